package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByItemCode  = "item_code"
	orderByUpdatedAt = "updated_at"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByItemCode:  "item_code ASC",
	orderByUpdatedAt: "updated_at DESC, item_code ASC",
}

const defaultOrderBy = "item_code ASC"

const baseOverridesSelect = `SELECT item_code, label, code, updated_at
FROM manual_overrides`

const countOverridesSelect = "SELECT COUNT(*) FROM manual_overrides"

// escapeLike escapes LIKE metacharacters so a prefix filter matches
// literally.
var escapeLike = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an
// override query. It returns the data query, the count query and the
// positional parameters shared by both.
func (q *OverrideQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.ItemCodePrefix != nil && *q.ItemCodePrefix != "" {
		conditions = append(conditions, fmt.Sprintf("item_code LIKE $%d", paramIdx))
		args = append(args, escapeLike.Replace(*q.ItemCodePrefix)+"%")
		paramIdx++
	}

	if q.Label != nil {
		conditions = append(conditions, fmt.Sprintf("label = $%d", paramIdx))
		args = append(args, *q.Label)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseOverridesSelect, whereClause, orderClause, limit, offset,
	)
	countSQL = countOverridesSelect + whereClause

	return dataSQL, countSQL, args
}
