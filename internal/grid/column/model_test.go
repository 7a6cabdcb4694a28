package column

import (
	"testing"
)

func testColumns() []Column {
	return []Column{
		{Field: "id", Label: "ID", Type: TypeNumber, Sortable: true},
		{Field: "name", Label: "Name", Sortable: true, Filterable: true},
		{Field: "age", Label: "Age", Type: TypeNumber, Sortable: true, Filterable: true},
		{Field: "active", Label: "Active", Type: TypeBool},
	}
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(testColumns())
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

func TestNewModelDuplicateField(t *testing.T) {
	cols := []Column{{Field: "id"}, {Field: "name"}, {Field: "id"}}
	if _, err := NewModel(cols); err == nil {
		t.Fatal("NewModel with duplicate field should fail")
	}
}

func TestNewModelEmpty(t *testing.T) {
	if _, err := NewModel(nil); err == nil {
		t.Fatal("NewModel with no columns should fail")
	}
}

func TestSetWidthClamp(t *testing.T) {
	tests := []struct {
		name  string
		px    int
		wantP int
	}{
		{"normal", 120, 120},
		{"at minimum", MinWidth, MinWidth},
		{"below minimum", 10, MinWidth},
		{"negative", -5, MinWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m.SetWidth("name", tt.px)
			c, _ := m.Get("name")
			if c.Width.Pixels() != tt.wantP {
				t.Errorf("width = %d, want %d", c.Width.Pixels(), tt.wantP)
			}
		})
	}
}

func TestSetWidthUnknownField(t *testing.T) {
	m := newTestModel(t)
	m.SetWidth("nope", 100) // must not panic
	if _, ok := m.Get("nope"); ok {
		t.Error("unknown field appeared in model")
	}
}

func TestSetVisible(t *testing.T) {
	m := newTestModel(t)

	if changed := m.SetVisible("name", false); !changed {
		t.Error("hiding a visible column should report a change")
	}
	if changed := m.SetVisible("name", false); changed {
		t.Error("hiding an already-hidden column should not report a change")
	}
	if changed := m.SetVisible("nope", false); changed {
		t.Error("unknown field should not report a change")
	}

	visible := m.VisibleOrdered()
	for _, c := range visible {
		if c.Field == "name" {
			t.Error("hidden column still in visible projection")
		}
	}

	// Hiding everything is allowed.
	for _, f := range m.Order() {
		m.SetVisible(f, false)
	}
	if got := len(m.VisibleOrdered()); got != 0 {
		t.Errorf("all hidden: VisibleOrdered() has %d columns, want 0", got)
	}
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		pivot     string
		side      Side
		wantOrder []string
		wantMoved bool
	}{
		{"before first", "age", "id", SideBefore, []string{"age", "id", "name", "active"}, true},
		{"after last", "id", "active", SideAfter, []string{"name", "age", "active", "id"}, true},
		{"after neighbor", "id", "name", SideAfter, []string{"name", "id", "age", "active"}, true},
		{"self pivot", "id", "id", SideBefore, []string{"id", "name", "age", "active"}, false},
		{"unknown field", "nope", "id", SideBefore, []string{"id", "name", "age", "active"}, false},
		{"unknown pivot", "id", "nope", SideBefore, []string{"id", "name", "age", "active"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			_, _, moved := m.Reorder(tt.field, tt.pivot, tt.side)
			if moved != tt.wantMoved {
				t.Errorf("moved = %v, want %v", moved, tt.wantMoved)
			}
			got := m.Order()
			if len(got) != len(tt.wantOrder) {
				t.Fatalf("order = %v, want %v", got, tt.wantOrder)
			}
			for i := range got {
				if got[i] != tt.wantOrder[i] {
					t.Fatalf("order = %v, want %v", got, tt.wantOrder)
				}
			}
		})
	}
}

func TestReorderKeepsPermutation(t *testing.T) {
	m := newTestModel(t)
	moves := []struct {
		field, pivot string
		side         Side
	}{
		{"id", "active", SideAfter},
		{"age", "name", SideBefore},
		{"active", "age", SideBefore},
		{"name", "id", SideAfter},
		{"id", "name", SideBefore},
	}
	for _, mv := range moves {
		m.Reorder(mv.field, mv.pivot, mv.side)
	}

	order := m.Order()
	if len(order) != m.Len() {
		t.Fatalf("order length %d, want %d", len(order), m.Len())
	}
	seen := make(map[string]bool)
	for _, f := range order {
		if seen[f] {
			t.Fatalf("field %q appears twice in order %v", f, order)
		}
		seen[f] = true
		if _, ok := m.Get(f); !ok {
			t.Fatalf("order contains unknown field %q", f)
		}
	}
}

func TestVisibleOrderedRecomputed(t *testing.T) {
	m := newTestModel(t)
	before := m.VisibleOrdered()
	m.SetVisible("id", false)
	m.Reorder("age", "name", SideBefore)
	after := m.VisibleOrdered()

	if len(before) != 4 || len(after) != 3 {
		t.Fatalf("projection lengths = %d, %d; want 4, 3", len(before), len(after))
	}
	if after[0].Field != "age" {
		t.Errorf("first visible = %q, want %q", after[0].Field, "age")
	}
}

func TestApplyLayout(t *testing.T) {
	m := newTestModel(t)
	m.ApplyLayout(
		map[string]bool{"id": false, "ghost": true},
		[]string{"age", "name", "ghost"},
		map[string]Width{"name": Px(200), "ghost": Px(80)},
	)

	if c, _ := m.Get("id"); !c.Hidden {
		t.Error("layout visibility was not applied")
	}
	if c, _ := m.Get("name"); c.Width.Pixels() != 200 {
		t.Error("layout width was not applied")
	}

	want := []string{"age", "name", "id", "active"}
	got := m.Order()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestWidthTextRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		w    Width
		text string
	}{
		{"pixels", Px(120), "120"},
		{"flex", Flex(), "flex"},
		{"zero value is flex", Width{}, "flex"},
		{"clamped", Px(3), "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.w.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText() error = %v", err)
			}
			if string(b) != tt.text {
				t.Fatalf("MarshalText() = %q, want %q", b, tt.text)
			}
			var back Width
			if err := back.UnmarshalText(b); err != nil {
				t.Fatalf("UnmarshalText(%q) error = %v", b, err)
			}
			if back.IsFlex() != tt.w.IsFlex() || back.Pixels() != tt.w.Pixels() {
				t.Errorf("round trip = %v, want %v", back, tt.w)
			}
		})
	}

	var w Width
	if err := w.UnmarshalText([]byte("wide")); err == nil {
		t.Error("UnmarshalText of junk should fail")
	}
}

func TestTypeFromString(t *testing.T) {
	tests := []struct {
		input string
		want  Type
	}{
		{"text", TypeText},
		{"number", TypeNumber},
		{"float", TypeNumber},
		{"date", TypeDate},
		{"bool", TypeBool},
		{"boolean", TypeBool},
		{"mystery", TypeText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := TypeFromString(tt.input); got != tt.want {
				t.Errorf("TypeFromString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
