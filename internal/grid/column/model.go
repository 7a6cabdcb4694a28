package column

import "fmt"

// Side says where a column lands relative to a pivot during reorder.
type Side uint8

const (
	// SideBefore inserts the moved column before the pivot.
	SideBefore Side = iota
	// SideAfter inserts the moved column after the pivot.
	SideAfter
)

// Model holds the column set and its mutable layout. Mutating calls
// that reference an unknown field are silent no-ops: the model is
// driven by possibly-stale renderer events and must not throw them
// back.
type Model struct {
	columns map[string]*Column
	order   []string
}

// NewModel creates a model from the given column definitions. The
// order sequence is the definition order. A duplicate field key is a
// construction-time caller bug and fails immediately.
func NewModel(cols []Column) (*Model, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	m := &Model{
		columns: make(map[string]*Column, len(cols)),
		order:   make([]string, 0, len(cols)),
	}
	for i := range cols {
		c := cols[i]
		if _, exists := m.columns[c.Field]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, c.Field)
		}
		m.columns[c.Field] = &c
		m.order = append(m.order, c.Field)
	}
	return m, nil
}

// Get returns a copy of the column for the field.
func (m *Model) Get(field string) (Column, bool) {
	c, ok := m.columns[field]
	if !ok {
		return Column{}, false
	}
	return *c, true
}

// Len returns the number of columns.
func (m *Model) Len() int {
	return len(m.order)
}

// Order returns a copy of the full order sequence.
func (m *Model) Order() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// OrderIndex returns the position of the field in the order sequence,
// or -1 when unknown.
func (m *Model) OrderIndex(field string) int {
	for i, f := range m.order {
		if f == field {
			return i
		}
	}
	return -1
}

// SetWidth sets a fixed pixel width, clamped to MinWidth. Unknown
// fields are ignored.
func (m *Model) SetWidth(field string, px int) {
	c, ok := m.columns[field]
	if !ok {
		return
	}
	c.Width = Px(px)
}

// SetVisible shows or hides the column and reports whether visibility
// actually changed. Hiding every column is allowed. Unknown fields are
// ignored.
func (m *Model) SetVisible(field string, visible bool) bool {
	c, ok := m.columns[field]
	if !ok || c.Hidden == !visible {
		return false
	}
	c.Hidden = !visible
	return true
}

// Reorder removes field from the order sequence and reinserts it on
// the given side of pivot. It reports the old and new order positions
// and whether anything moved. Unknown fields and field == pivot are
// no-ops.
func (m *Model) Reorder(field, pivot string, side Side) (oldIndex, newIndex int, moved bool) {
	if field == pivot {
		return 0, 0, false
	}
	oldIndex = m.OrderIndex(field)
	if oldIndex < 0 || m.OrderIndex(pivot) < 0 {
		return 0, 0, false
	}

	without := make([]string, 0, len(m.order)-1)
	for _, f := range m.order {
		if f != field {
			without = append(without, f)
		}
	}
	at := 0
	for i, f := range without {
		if f == pivot {
			at = i
			if side == SideAfter {
				at = i + 1
			}
			break
		}
	}

	m.order = append(without[:at:at], append([]string{field}, without[at:]...)...)
	return oldIndex, at, true
}

// VisibleOrdered returns copies of the visible columns in order. The
// projection is recomputed on every call.
func (m *Model) VisibleOrdered() []Column {
	out := make([]Column, 0, len(m.order))
	for _, f := range m.order {
		c := m.columns[f]
		if !c.Hidden {
			out = append(out, *c)
		}
	}
	return out
}

// ApplyLayout overwrites visibility, order and widths from a saved
// layout. Unknown fields in the layout are ignored; columns missing
// from the layout order keep their relative position after the listed
// ones.
func (m *Model) ApplyLayout(visibility map[string]bool, order []string, widths map[string]Width) {
	for field, visible := range visibility {
		if c, ok := m.columns[field]; ok {
			c.Hidden = !visible
		}
	}
	for field, w := range widths {
		if c, ok := m.columns[field]; ok {
			c.Width = w
		}
	}
	if len(order) == 0 {
		return
	}
	next := make([]string, 0, len(m.order))
	seen := make(map[string]bool, len(m.order))
	for _, f := range order {
		if _, ok := m.columns[f]; ok && !seen[f] {
			next = append(next, f)
			seen[f] = true
		}
	}
	for _, f := range m.order {
		if !seen[f] {
			next = append(next, f)
		}
	}
	m.order = next
}
