package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// compareValues orders two raw cell values by their native ordering:
// numerically when both are numeric types, chronologically when both
// are times, false before true for booleans, and by string form
// otherwise. Nil sorts before everything.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if na, ok := numericValue(a); ok {
		if nb, ok := numericValue(b); ok {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			default:
				return 0
			}
		}
	}

	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}

	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ba == bb:
				return 0
			case !ba:
				return -1
			default:
				return 1
			}
		}
	}

	return strings.Compare(stringForm(a), stringForm(b))
}

// numericValue extracts a float64 from any numeric Go type. Strings
// are not numbers here; sorting keeps their lexicographic order.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// parseNumber is the looser coercion used by comparison filters: any
// numeric type, or a string that parses as a float.
func parseNumber(v any) (float64, bool) {
	if n, ok := numericValue(v); ok {
		return n, true
	}
	if s, ok := v.(string); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

// stringForm renders a cell value for substring matching and fallback
// ordering.
func stringForm(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
