package view

import (
	"strconv"
	"strings"

	"github.com/dshills/gridkit/internal/grid/column"
	"github.com/dshills/gridkit/internal/store"
)

// predicate is one compiled column filter.
type predicate struct {
	raw string

	// Comparison form: >N, <N or =N.
	compare   bool
	op        byte
	operand   float64
	operandOK bool

	// Substring form, pre-lowered.
	needle string
}

// matches evaluates the predicate against one raw cell value.
// Malformed input never matches and never fails.
func (p *predicate) matches(value any) bool {
	if p.compare {
		if !p.operandOK {
			return false
		}
		n, ok := parseNumber(value)
		if !ok {
			return false
		}
		switch p.op {
		case '>':
			return n > p.operand
		case '<':
			return n < p.operand
		default:
			return n == p.operand
		}
	}
	return strings.Contains(strings.ToLower(stringForm(value)), p.needle)
}

// compilePredicate parses raw filter text into a predicate. A leading
// >, < or = selects numeric comparison on the remainder; anything else
// is a case-insensitive substring match.
func compilePredicate(raw string) *predicate {
	p := &predicate{raw: raw}
	if len(raw) > 0 && (raw[0] == '>' || raw[0] == '<' || raw[0] == '=') {
		p.compare = true
		p.op = raw[0]
		operand, err := strconv.ParseFloat(strings.TrimSpace(raw[1:]), 64)
		if err == nil {
			p.operand = operand
			p.operandOK = true
		}
		return p
	}
	p.needle = strings.ToLower(raw)
	return p
}

// Filters holds the per-column filter predicates. Rows must satisfy
// every active predicate (AND across columns).
type Filters struct {
	model *column.Model
	preds map[string]*predicate
}

// NewFilters creates an empty filter set over the given columns.
func NewFilters(model *column.Model) *Filters {
	return &Filters{
		model: model,
		preds: make(map[string]*predicate),
	}
}

// Set stores the filter text for a column, or deletes the predicate
// when the text is blank. Unknown and unfilterable fields are ignored.
// It reports whether the filter set changed.
func (f *Filters) Set(field, raw string) bool {
	c, ok := f.model.Get(field)
	if !ok || !c.Filterable {
		return false
	}
	prev, had := f.preds[field]
	if raw == "" {
		if !had {
			return false
		}
		delete(f.preds, field)
		return true
	}
	if had && prev.raw == raw {
		return false
	}
	f.preds[field] = compilePredicate(raw)
	return true
}

// Raw returns the stored filter text for a column, blank when none.
func (f *Filters) Raw(field string) string {
	if p, ok := f.preds[field]; ok {
		return p.raw
	}
	return ""
}

// Len returns the number of active predicates.
func (f *Filters) Len() int {
	return len(f.preds)
}

// Clear removes every predicate and reports whether any were active.
func (f *Filters) Clear() bool {
	if len(f.preds) == 0 {
		return false
	}
	f.preds = make(map[string]*predicate)
	return true
}

// Matches reports whether a record satisfies every active predicate.
func (f *Filters) Matches(rec store.Record) bool {
	for field, p := range f.preds {
		if !p.matches(rec[field]) {
			return false
		}
	}
	return true
}

// MatchCount counts records matching only the given column's own
// predicate, ignoring all others. With no predicate on the column,
// every record matches. This feeds UI hints only; it never affects the
// computed rows.
func (f *Filters) MatchCount(field string, records []store.Record) int {
	p, ok := f.preds[field]
	if !ok {
		return len(records)
	}
	count := 0
	for _, rec := range records {
		if p.matches(rec[field]) {
			count++
		}
	}
	return count
}
