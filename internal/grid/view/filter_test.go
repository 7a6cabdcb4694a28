package view

import (
	"testing"

	"github.com/dshills/gridkit/internal/store"
)

func TestPredicateMatching(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		value any
		want  bool
	}{
		{"substring hit", "nn", "Annie", true},
		{"substring case-insensitive", "ANN", "annie", true},
		{"substring miss", "zed", "Annie", false},
		{"substring on number", "3", 35, true},
		{"greater hit", ">30", 35, true},
		{"greater miss", ">30", 25, false},
		{"greater boundary", ">30", 30, false},
		{"less hit", "<30", 25.5, true},
		{"equal hit", "=25", 25, true},
		{"equal miss", "=25", 25.5, false},
		{"numeric string value", ">30", "42", true},
		{"non-numeric value", ">30", "old", false},
		{"malformed operand", ">abc", 35, false},
		{"operand whitespace", "> 30", 35, true},
		{"nil value substring", "x", nil, false},
		{"empty needle matches", "", "anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := compilePredicate(tt.raw)
			if got := p.matches(tt.value); got != tt.want {
				t.Errorf("predicate %q on %v = %v, want %v", tt.raw, tt.value, got, tt.want)
			}
		})
	}
}

func TestFiltersSet(t *testing.T) {
	f := NewFilters(testModel(t))

	if !f.Set("name", "ann") {
		t.Error("setting a new filter should report a change")
	}
	if f.Set("name", "ann") {
		t.Error("setting the same text should not report a change")
	}
	if f.Set("nope", "x") {
		t.Error("unknown field should be ignored")
	}
	if f.Set("notes", "x") {
		t.Error("unfilterable column should be ignored")
	}
	if f.Raw("name") != "ann" {
		t.Errorf("Raw(name) = %q, want %q", f.Raw("name"), "ann")
	}

	// Blank deletes.
	if !f.Set("name", "") {
		t.Error("blanking an active filter should report a change")
	}
	if f.Set("name", "") {
		t.Error("blanking an absent filter should not report a change")
	}
	if f.Len() != 0 {
		t.Errorf("Len() = %d, want 0", f.Len())
	}
}

func TestFiltersMatchesAND(t *testing.T) {
	f := NewFilters(testModel(t))
	f.Set("name", "a")
	f.Set("age", ">30")

	tests := []struct {
		name string
		rec  store.Record
		want bool
	}{
		{"both match", store.Record{"name": "Frank", "age": 40}, true},
		{"name only", store.Record{"name": "Ann", "age": 25}, false},
		{"age only", store.Record{"name": "Bob", "age": 40}, false},
		{"neither", store.Record{"name": "Bob", "age": 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Matches(tt.rec); got != tt.want {
				t.Errorf("Matches(%v) = %v, want %v", tt.rec, got, tt.want)
			}
		})
	}
}

func TestFilterMonotonicity(t *testing.T) {
	records := []store.Record{
		{"name": "Ann", "age": 25},
		{"name": "Bob", "age": 35},
		{"name": "Cara", "age": 45},
		{"name": "Dan", "age": 30},
	}
	f := NewFilters(testModel(t))

	countMatching := func() int {
		n := 0
		for _, r := range records {
			if f.Matches(r) {
				n++
			}
		}
		return n
	}

	base := countMatching()
	if base != len(records) {
		t.Fatalf("no filters: %d matches, want %d", base, len(records))
	}

	f.Set("age", ">28")
	one := countMatching()
	if one > base {
		t.Errorf("one filter matches %d > unfiltered %d", one, base)
	}

	f.Set("name", "a")
	two := countMatching()
	if two > one {
		t.Errorf("second filter increased matches: %d > %d", two, one)
	}
}

func TestMatchCountIgnoresOtherColumns(t *testing.T) {
	records := []store.Record{
		{"name": "Ann", "age": 25},
		{"name": "Bob", "age": 35},
		{"name": "Abe", "age": 45},
	}
	f := NewFilters(testModel(t))
	f.Set("name", "a")
	f.Set("age", ">30")

	if got := f.MatchCount("name", records); got != 2 {
		t.Errorf("MatchCount(name) = %d, want 2", got)
	}
	if got := f.MatchCount("age", records); got != 2 {
		t.Errorf("MatchCount(age) = %d, want 2", got)
	}
	// No predicate on the column: everything matches.
	if got := f.MatchCount("id", records); got != 3 {
		t.Errorf("MatchCount(id) = %d, want 3", got)
	}
}

func TestFiltersClear(t *testing.T) {
	f := NewFilters(testModel(t))
	if f.Clear() {
		t.Error("clearing empty filters should report false")
	}
	f.Set("name", "a")
	f.Set("age", ">1")
	if !f.Clear() {
		t.Error("clearing active filters should report true")
	}
	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", f.Len())
	}
}
