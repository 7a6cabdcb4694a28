package view

import (
	"testing"

	"github.com/dshills/gridkit/internal/grid/column"
)

func testModel(t *testing.T) *column.Model {
	t.Helper()
	m, err := column.NewModel([]column.Column{
		{Field: "id", Type: column.TypeNumber, Sortable: true},
		{Field: "name", Sortable: true, Filterable: true},
		{Field: "age", Type: column.TypeNumber, Sortable: true, Filterable: true},
		{Field: "notes"},
	})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

func TestToggleCycle(t *testing.T) {
	s := NewSortState(testModel(t))

	if _, ok := s.Active(); ok {
		t.Fatal("new sort state should be inactive")
	}

	s.Toggle("name")
	desc, ok := s.Active()
	if !ok || desc.Field != "name" || desc.Direction != Ascending {
		t.Fatalf("after 1 toggle: %+v, %v; want name asc", desc, ok)
	}

	s.Toggle("name")
	desc, ok = s.Active()
	if !ok || desc.Direction != Descending {
		t.Fatalf("after 2 toggles: %+v, %v; want name desc", desc, ok)
	}

	s.Toggle("name")
	if _, ok := s.Active(); ok {
		t.Fatal("after 3 toggles sort should be cleared")
	}

	// Fourth toggle starts the cycle again.
	s.Toggle("name")
	desc, ok = s.Active()
	if !ok || desc.Direction != Ascending {
		t.Fatalf("after 4 toggles: %+v, %v; want name asc", desc, ok)
	}
}

func TestToggleSwitchesField(t *testing.T) {
	s := NewSortState(testModel(t))
	s.Toggle("name")
	s.Toggle("name") // name desc
	s.Toggle("age")

	desc, ok := s.Active()
	if !ok || desc.Field != "age" || desc.Direction != Ascending {
		t.Fatalf("switching field: %+v, %v; want age asc", desc, ok)
	}
}

func TestToggleUnsortable(t *testing.T) {
	s := NewSortState(testModel(t))
	if s.Toggle("notes") {
		t.Error("toggling an unsortable column should not change state")
	}
	if s.Toggle("nope") {
		t.Error("toggling an unknown column should not change state")
	}
	if _, ok := s.Active(); ok {
		t.Error("sort should remain inactive")
	}
}

func TestSortClear(t *testing.T) {
	s := NewSortState(testModel(t))
	if s.Clear() {
		t.Error("clearing an inactive sort should report false")
	}
	s.Toggle("name")
	if !s.Clear() {
		t.Error("clearing an active sort should report true")
	}
}
