package view

import (
	"sort"

	"github.com/dshills/gridkit/internal/store"
)

// Cache is the materialized view: store records filtered by the active
// predicates and sorted by the active descriptor, in display order.
//
// The cache starts dirty and recomputes on the first read after any
// invalidation. Each recompute bumps the generation exactly once.
type Cache struct {
	store   store.Store
	sorts   *SortState
	filters *Filters

	dirty bool
	rows  []store.Record
	gen   uint64
}

// NewCache creates a cache over the given store and view state.
func NewCache(st store.Store, sorts *SortState, filters *Filters) *Cache {
	return &Cache{
		store:   st,
		sorts:   sorts,
		filters: filters,
		dirty:   true,
	}
}

// Invalidate marks the cache dirty. Idempotent; the next read
// recomputes.
func (c *Cache) Invalidate() {
	c.dirty = true
}

// Dirty reports whether the next read will recompute.
func (c *Cache) Dirty() bool {
	return c.dirty
}

// Generation returns the monotonic version of the last
// materialization. Indices taken from Rows are valid only while the
// generation is unchanged.
func (c *Cache) Generation() uint64 {
	return c.gen
}

// Rows returns the current display rows, recomputing first when dirty.
// The returned slice is owned by the cache; callers must not mutate
// it.
func (c *Cache) Rows() []store.Record {
	if c.dirty {
		c.recompute()
	}
	return c.rows
}

// Len returns the current row count, recomputing first when dirty.
func (c *Cache) Len() int {
	return len(c.Rows())
}

// At returns the row at the given display index, or nil when out of
// range.
func (c *Cache) At(index int) store.Record {
	rows := c.Rows()
	if index < 0 || index >= len(rows) {
		return nil
	}
	return rows[index]
}

// IndexOf returns the display index of the given record, or -1.
func (c *Cache) IndexOf(rec store.Record) int {
	for i, r := range c.Rows() {
		if store.Same(r, rec) {
			return i
		}
	}
	return -1
}

// recompute pulls the full record list, applies the filters (AND
// across columns), applies the active sort stably, and bumps the
// generation once.
func (c *Cache) recompute() {
	records := c.store.Records()

	rows := make([]store.Record, 0, len(records))
	for _, rec := range records {
		if c.filters.Matches(rec) {
			rows = append(rows, rec)
		}
	}

	if desc, ok := c.sorts.Active(); ok {
		field := desc.Field
		negate := desc.Direction == Descending
		sort.SliceStable(rows, func(i, j int) bool {
			cmp := compareValues(rows[i][field], rows[j][field])
			if negate {
				cmp = -cmp
			}
			return cmp < 0
		})
	}

	c.rows = rows
	c.gen++
	c.dirty = false
}
