package edit

import (
	"testing"

	"github.com/dshills/gridkit/internal/grid/column"
	"github.com/dshills/gridkit/internal/store"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSession()
	if _, active := s.Active(); active {
		t.Fatal("new session should be idle")
	}

	rec := store.Record{"name": "Bob"}
	if !s.Start(2, "name", rec, 7) {
		t.Fatal("starting an idle session should report a start")
	}
	st, active := s.Active()
	if !active || st.RowIndex != 2 || st.Field != "name" || st.Original != "Bob" || st.Generation != 7 {
		t.Fatalf("Active() = %+v, %v", st, active)
	}

	// Identical cell again: idempotent no-op, original preserved.
	rec["name"] = "already-changed"
	if s.Start(2, "name", rec, 8) {
		t.Error("restarting the identical cell should be a no-op")
	}
	st, _ = s.Active()
	if st.Original != "Bob" || st.Generation != 7 {
		t.Errorf("idempotent restart overwrote state: %+v", st)
	}

	ended, ok := s.End()
	if !ok || ended.Field != "name" {
		t.Fatalf("End() = %+v, %v", ended, ok)
	}
	if _, active := s.Active(); active {
		t.Error("session should be idle after End")
	}
	if _, ok := s.End(); ok {
		t.Error("ending an idle session should report nothing")
	}
}

func TestSessionIs(t *testing.T) {
	s := NewSession()
	s.Start(1, "age", store.Record{"age": 30}, 0)
	if !s.Is(1, "age") {
		t.Error("Is should match the active cell")
	}
	if s.Is(1, "name") || s.Is(2, "age") {
		t.Error("Is should not match other cells")
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		typ  column.Type
		raw  string
		want any
	}{
		{"number", column.TypeNumber, "42.5", 42.5},
		{"number integer", column.TypeNumber, "35", float64(35)},
		{"number whitespace", column.TypeNumber, " 12 ", float64(12)},
		{"number junk defaults to zero", column.TypeNumber, "abc", float64(0)},
		{"number empty defaults to zero", column.TypeNumber, "", float64(0)},
		{"bool true", column.TypeBool, "true", true},
		{"bool junk defaults to false", column.TypeBool, "maybe", false},
		{"text passthrough", column.TypeText, "Zed", "Zed"},
		{"date passthrough", column.TypeDate, "2025-01-02", "2025-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Coerce(tt.typ, tt.raw); got != tt.want {
				t.Errorf("Coerce(%v, %q) = %#v, want %#v", tt.typ, tt.raw, got, tt.want)
			}
		})
	}
}
