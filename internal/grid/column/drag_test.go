package column

import (
	"testing"
)

func TestDragDropAfter(t *testing.T) {
	m := newTestModel(t)
	d := NewDrag(m)

	d.Begin("id")
	if f, active := d.Active(); !active || f != "id" {
		t.Fatalf("Active() = %q, %v; want %q, true", f, active, "id")
	}

	oldIdx, newIdx, moved := d.DropAt("age", SideAfter)
	if !moved {
		t.Fatal("drop onto a different column should move")
	}
	if oldIdx != 0 || newIdx != 2 {
		t.Errorf("indices = %d → %d, want 0 → 2", oldIdx, newIdx)
	}
	want := []string{"name", "age", "id", "active"}
	got := m.Order()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if _, active := d.Active(); active {
		t.Error("drag should end after drop")
	}
}

func TestDragDropOnSelf(t *testing.T) {
	m := newTestModel(t)
	d := NewDrag(m)
	d.Begin("name")
	if _, _, moved := d.DropAt("name", SideBefore); moved {
		t.Error("dropping on the dragged column should be a no-op")
	}
	want := []string{"id", "name", "age", "active"}
	got := m.Order()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestDragWithoutBegin(t *testing.T) {
	m := newTestModel(t)
	d := NewDrag(m)
	if _, _, moved := d.DropAt("name", SideBefore); moved {
		t.Error("drop without a drag in progress should be a no-op")
	}
}

func TestDragBeginUnknownField(t *testing.T) {
	m := newTestModel(t)
	d := NewDrag(m)
	d.Begin("nope")
	if _, active := d.Active(); active {
		t.Error("dragging an unknown field should not start a drag")
	}
}

func TestDragCancel(t *testing.T) {
	m := newTestModel(t)
	d := NewDrag(m)
	d.Begin("age")
	d.Cancel()
	if _, _, moved := d.DropAt("id", SideBefore); moved {
		t.Error("drop after cancel should be a no-op")
	}
}
