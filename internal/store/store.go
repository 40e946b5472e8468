// Package store defines the datastore abstraction for canvas-classifier.
// Business logic depends on the Store interface, never on the concrete
// Postgres implementation, so handlers and the engine can be tested with
// mocks and no running database.
package store

import (
	"context"
	"errors"

	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

// ErrNotFound is returned when a requested override does not exist.
var ErrNotFound = errors.New("not found")

// OverrideQuery defines optional filters for listing manual overrides.
type OverrideQuery struct {
	ItemCodePrefix *string
	Label          *string
	Limit          int // default 50
	Offset         int
	OrderBy        string // "item_code", "updated_at"
}

// Store defines all data access operations for canvas-classifier.
type Store interface {
	// Manual overrides
	ListOverrides(ctx context.Context, q *OverrideQuery) ([]domain.ManualOverride, int, error)
	AllOverrides(ctx context.Context) ([]domain.ManualOverride, error)
	GetOverride(ctx context.Context, itemCode string) (*domain.ManualOverride, error)
	UpsertOverride(ctx context.Context, o *domain.ManualOverride) error
	DeleteOverride(ctx context.Context, itemCode string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
