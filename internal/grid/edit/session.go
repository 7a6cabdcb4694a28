package edit

import (
	"strconv"
	"strings"

	"github.com/dshills/gridkit/internal/grid/column"
	"github.com/dshills/gridkit/internal/store"
)

// State describes an active edit: the display row and field being
// edited, the record and original value captured at start, and the
// view cache generation the row index references. The record is held
// by identity so a commit still lands after the view regenerates.
type State struct {
	RowIndex   int
	Field      string
	Record     store.Record
	Original   any
	Generation uint64
}

// Session is the single edit slot. The zero value is idle.
type Session struct {
	active bool
	state  State
}

// NewSession creates an idle session.
func NewSession() *Session {
	return &Session{}
}

// Active returns the current edit state, if any.
func (s *Session) Active() (State, bool) {
	if !s.active {
		return State{}, false
	}
	return s.state, true
}

// Is reports whether the active session targets the given cell.
func (s *Session) Is(rowIndex int, field string) bool {
	return s.active && s.state.RowIndex == rowIndex && s.state.Field == field
}

// Start begins editing a cell, capturing the record and its original
// field value. Starting the identical cell again is an idempotent
// no-op. The caller must have resolved any prior session first. It
// reports whether a new session actually started.
func (s *Session) Start(rowIndex int, field string, rec store.Record, gen uint64) bool {
	if s.Is(rowIndex, field) {
		return false
	}
	s.active = true
	s.state = State{
		RowIndex:   rowIndex,
		Field:      field,
		Record:     rec,
		Original:   rec[field],
		Generation: gen,
	}
	return true
}

// End clears the session and returns the state it held.
func (s *Session) End() (State, bool) {
	if !s.active {
		return State{}, false
	}
	st := s.state
	s.active = false
	s.state = State{}
	return st, true
}

// Coerce converts committed raw input per the column type. Numeric
// columns parse a float and fall back to 0; boolean columns parse a
// bool and fall back to false; everything else passes the string
// through. Coercion never fails.
func Coerce(t column.Type, raw string) any {
	switch t {
	case column.TypeNumber:
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return float64(0)
		}
		return n
	case column.TypeBool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return false
		}
		return b
	default:
		return raw
	}
}
