package view

import (
	"github.com/dshills/gridkit/internal/grid/column"
)

// Direction is a sort direction.
type Direction uint8

const (
	// Ascending orders smallest first.
	Ascending Direction = iota
	// Descending orders largest first. Descending negates the ascending
	// comparison result rather than reversing output, so equal keys keep
	// store order either way.
	Descending
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Descriptor is the single active sort: a column field and direction.
type Descriptor struct {
	Field     string
	Direction Direction
}

// SortState holds at most one sort descriptor and cycles it through
// none, ascending, descending on repeated toggles.
type SortState struct {
	model *column.Model
	desc  *Descriptor
}

// NewSortState creates an empty sort state over the given columns.
func NewSortState(model *column.Model) *SortState {
	return &SortState{model: model}
}

// Toggle cycles the sort on field: none to ascending, ascending to
// descending, descending back to none. Toggling a different field
// replaces the previous descriptor and starts at ascending. Unknown or
// unsortable fields are ignored. It reports whether the descriptor
// changed.
func (s *SortState) Toggle(field string) bool {
	c, ok := s.model.Get(field)
	if !ok || !c.Sortable {
		return false
	}

	switch {
	case s.desc == nil || s.desc.Field != field:
		s.desc = &Descriptor{Field: field, Direction: Ascending}
	case s.desc.Direction == Ascending:
		s.desc.Direction = Descending
	default:
		s.desc = nil
	}
	return true
}

// Active returns the current descriptor, if any.
func (s *SortState) Active() (Descriptor, bool) {
	if s.desc == nil {
		return Descriptor{}, false
	}
	return *s.desc, true
}

// Clear drops the descriptor and reports whether one was active.
func (s *SortState) Clear() bool {
	had := s.desc != nil
	s.desc = nil
	return had
}
