package column

import (
	"fmt"
	"strconv"
)

// MinWidth is the smallest pixel width a column can be resized to.
const MinWidth = 50

// Type describes the value domain of a column. It drives filter
// parsing and edit-commit coercion; it never restricts what a record
// actually stores.
type Type uint8

const (
	// TypeText is the default free-form text column.
	TypeText Type = iota
	// TypeNumber holds numeric values; filters and edits parse floats.
	TypeNumber
	// TypeDate holds time values.
	TypeDate
	// TypeBool holds boolean values.
	TypeBool
)

// String returns the column type name.
func (t Type) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeNumber:
		return "number"
	case TypeDate:
		return "date"
	case TypeBool:
		return "boolean"
	default:
		return "text"
	}
}

// TypeFromString parses a column type name. Unknown names map to
// TypeText.
func TypeFromString(s string) Type {
	switch s {
	case "number", "numeric", "int", "float":
		return TypeNumber
	case "date", "time", "datetime":
		return TypeDate
	case "boolean", "bool":
		return TypeBool
	default:
		return TypeText
	}
}

// Width is a column width: either a fixed pixel count or flex, which
// distributes remaining space by the column's flex weight. The zero
// value is flex, so an unspecified width stretches.
type Width struct {
	px   int
	flex bool
}

// Px creates a fixed pixel width, clamped to MinWidth.
func Px(px int) Width {
	if px < MinWidth {
		px = MinWidth
	}
	return Width{px: px}
}

// Flex creates a flex width.
func Flex() Width {
	return Width{flex: true}
}

// IsFlex reports whether the width is flex.
func (w Width) IsFlex() bool {
	return w.flex || w.px == 0
}

// Pixels returns the fixed pixel count, or 0 for flex widths.
func (w Width) Pixels() int {
	if w.IsFlex() {
		return 0
	}
	return w.px
}

// MarshalText encodes the width as "flex" or a decimal pixel count.
func (w Width) MarshalText() ([]byte, error) {
	if w.IsFlex() {
		return []byte("flex"), nil
	}
	return []byte(strconv.Itoa(w.px)), nil
}

// UnmarshalText decodes "flex" or a decimal pixel count.
func (w *Width) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "flex" {
		*w = Flex()
		return nil
	}
	px, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid column width %q: %w", s, err)
	}
	*w = Px(px)
	return nil
}

// String returns the text form of the width.
func (w Width) String() string {
	b, _ := w.MarshalText()
	return string(b)
}

// Column describes one grid column. Identity is the Field key; the
// record property it projects has the same name.
type Column struct {
	// Field is the unique key identifying the column.
	Field string

	// Label is the header text shown by the renderer.
	Label string

	// Width is the column's layout width.
	Width Width

	// FlexWeight is the share of remaining space for flex widths.
	// Zero means weight 1.
	FlexWeight int

	// Sortable allows the column to carry the sort descriptor.
	Sortable bool

	// Filterable allows a filter predicate on the column.
	Filterable bool

	// Type drives filter parsing and edit coercion.
	Type Type

	// Hidden excludes the column from the visible projection.
	Hidden bool
}
