package grid

import (
	"github.com/dshills/gridkit/internal/grid/view"
)

// ToggleSort cycles the sort on a column: none, ascending, descending,
// none. Unknown or unsortable columns are ignored.
func (e *Engine) ToggleSort(field string) {
	if e.sorts.Toggle(field) {
		e.resolveAndInvalidate()
	}
}

// ActiveSort returns the current sort descriptor, if any.
func (e *Engine) ActiveSort() (view.Descriptor, bool) {
	return e.sorts.Active()
}

// SetFilter stores filter text for a column; blank text removes the
// predicate. Unknown and unfilterable columns are ignored. Debouncing
// typed input is the renderer's job; SetFilter itself is synchronous
// and complete.
func (e *Engine) SetFilter(field, raw string) {
	if e.filters.Set(field, raw) {
		e.resolveAndInvalidate()
	}
}

// FilterText returns the stored filter text for a column.
func (e *Engine) FilterText(field string) string {
	return e.filters.Raw(field)
}

// ClearFilters removes every filter predicate.
func (e *Engine) ClearFilters() {
	if e.filters.Clear() {
		e.resolveAndInvalidate()
	}
}

// MatchCount counts store records matching only the given column's own
// predicate, ignoring all others. It feeds UI hints and never affects
// the display rows.
func (e *Engine) MatchCount(field string) int {
	return e.filters.MatchCount(field, e.store.Records())
}
