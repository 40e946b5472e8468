package engine

import (
	"maps"
	"sync/atomic"

	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

// OverrideCache holds the active manual override map. Snapshots are
// immutable; a refresh builds a new map and swaps the pointer, so readers
// never lock and a request sees one consistent set for its lifetime.
type OverrideCache struct {
	static  map[string]domain.ManualOverride
	current atomic.Pointer[map[string]domain.ManualOverride]
}

// NewOverrideCache creates a cache whose initial snapshot is static.
func NewOverrideCache(static map[string]domain.ManualOverride) *OverrideCache {
	c := &OverrideCache{static: maps.Clone(static)}
	if c.static == nil {
		c.static = map[string]domain.ManualOverride{}
	}
	initial := maps.Clone(c.static)
	c.current.Store(&initial)
	return c
}

// Snapshot returns the active override map. Callers must not modify it.
func (c *OverrideCache) Snapshot() map[string]domain.ManualOverride {
	return *c.current.Load()
}

// Len returns the size of the active snapshot.
func (c *OverrideCache) Len() int {
	return len(c.Snapshot())
}

// Replace installs a new snapshot made of the static overrides with
// dynamic layered on top; dynamic entries win on item code conflicts.
// It returns the size of the new snapshot.
func (c *OverrideCache) Replace(dynamic []domain.ManualOverride) int {
	next := make(map[string]domain.ManualOverride, len(c.static)+len(dynamic))
	maps.Copy(next, c.static)
	for _, o := range dynamic {
		next[o.ItemCode] = o
	}
	c.current.Store(&next)
	return len(next)
}
