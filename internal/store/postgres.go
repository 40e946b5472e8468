package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// ListOverrides returns one page of overrides matching q and the total
// number of matches.
func (s *PostgresStore) ListOverrides(
	ctx context.Context,
	q *OverrideQuery,
) ([]domain.ManualOverride, int, error) {
	if q == nil {
		q = &OverrideQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting overrides: %w", err)
	}

	overrides, err := s.queryOverrides(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return overrides, total, nil
}

// AllOverrides returns every stored override, ordered by item code.
func (s *PostgresStore) AllOverrides(ctx context.Context) ([]domain.ManualOverride, error) {
	return s.queryOverrides(ctx, queryAllOverrides)
}

// GetOverride retrieves the override for one item code. Returns
// ErrNotFound when none exists.
func (s *PostgresStore) GetOverride(ctx context.Context, itemCode string) (*domain.ManualOverride, error) {
	o := &domain.ManualOverride{}
	var updatedAt time.Time

	err := s.pool.QueryRow(ctx, queryGetOverride, itemCode).Scan(
		&o.ItemCode, &o.Label, &o.Code, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting override: %w", err)
	}

	o.UpdatedAt = &updatedAt
	return o, nil
}

// UpsertOverride inserts or replaces the override for o.ItemCode and sets
// o.UpdatedAt from the database.
func (s *PostgresStore) UpsertOverride(ctx context.Context, o *domain.ManualOverride) error {
	args := pgx.NamedArgs{
		"item_code": o.ItemCode,
		"label":     o.Label,
		"code":      o.Code,
	}

	var updatedAt time.Time
	if err := s.pool.QueryRow(ctx, queryUpsertOverride, args).Scan(&updatedAt); err != nil {
		return fmt.Errorf("upserting override: %w", err)
	}
	o.UpdatedAt = &updatedAt
	return nil
}

// DeleteOverride removes the override for an item code. Returns
// ErrNotFound when nothing was deleted.
func (s *PostgresStore) DeleteOverride(ctx context.Context, itemCode string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteOverride, itemCode)
	if err != nil {
		return fmt.Errorf("deleting override: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) queryOverrides(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.ManualOverride, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying overrides: %w", err)
	}
	defer rows.Close()

	var overrides []domain.ManualOverride
	for rows.Next() {
		var o domain.ManualOverride
		var updatedAt time.Time
		if err := rows.Scan(&o.ItemCode, &o.Label, &o.Code, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning override: %w", err)
		}
		o.UpdatedAt = &updatedAt
		overrides = append(overrides, o)
	}

	return overrides, rows.Err()
}
