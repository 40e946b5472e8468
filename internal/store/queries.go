package store

// Override queries.
const (
	queryAllOverrides = `SELECT item_code, label, code, updated_at
FROM manual_overrides
ORDER BY item_code`

	queryGetOverride = `SELECT item_code, label, code, updated_at
FROM manual_overrides
WHERE item_code = $1`

	queryUpsertOverride = `INSERT INTO manual_overrides (item_code, label, code)
VALUES (@item_code, @label, @code)
ON CONFLICT (item_code) DO UPDATE SET
	label      = EXCLUDED.label,
	code       = EXCLUDED.code,
	updated_at = now()
RETURNING updated_at`

	queryDeleteOverride = `DELETE FROM manual_overrides WHERE item_code = $1`
)
