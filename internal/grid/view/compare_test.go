package view

import (
	"testing"
	"time"
)

func TestCompareValues(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"ints", 2, 10, -1},
		{"mixed numeric types", int32(7), 7.0, 0},
		{"floats", 2.5, 2.25, 1},
		{"strings lexicographic", "ann", "bob", -1},
		{"numeric strings stay lexicographic", "10", "9", -1},
		{"times", early, late, -1},
		{"bools", false, true, -1},
		{"equal bools", true, true, 0},
		{"nil first", nil, "x", -1},
		{"nil last", 5, nil, 1},
		{"both nil", nil, nil, 0},
		{"mixed falls back to string form", 10, "2", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareValues(tt.a, tt.b); got != tt.want {
				t.Errorf("compareValues(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
