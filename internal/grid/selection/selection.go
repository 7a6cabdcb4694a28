package selection

import "sort"

// Mode controls how clicks build the selected set.
type Mode uint8

const (
	// ModeNone disables selection entirely.
	ModeNone Mode = iota
	// ModeSingle keeps at most one selected row.
	ModeSingle
	// ModeMulti allows toggle and range selection.
	ModeMulti
)

// String returns the selection mode name.
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMulti:
		return "multi"
	default:
		return "none"
	}
}

// ModeFromString parses a selection mode name. Unknown names map to
// ModeNone.
func ModeFromString(s string) Mode {
	switch s {
	case "single":
		return ModeSingle
	case "multi", "multiple":
		return ModeMulti
	default:
		return ModeNone
	}
}

// Modifier carries the click modifiers relevant to selection.
type Modifier uint8

const (
	// ModifierNone is a plain click.
	ModifierNone Modifier = 0
	// ModifierToggle flips membership of the clicked row (ctrl-click).
	ModifierToggle Modifier = 1 << iota
	// ModifierRange extends a contiguous range from the selection
	// anchor to the clicked row (shift-click).
	ModifierRange
)

// Model is the selected row-index set for one grid view.
type Model struct {
	mode    Mode
	indices map[int]struct{}
	gen     uint64
}

// NewModel creates an empty selection in the given mode.
func NewModel(mode Mode) *Model {
	return &Model{
		mode:    mode,
		indices: make(map[int]struct{}),
	}
}

// Mode returns the current selection mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// SetMode switches the selection mode and clears the set; indices
// selected under one mode mean nothing under another.
func (m *Model) SetMode(mode Mode) bool {
	changed := m.mode != mode || len(m.indices) > 0
	m.mode = mode
	m.indices = make(map[int]struct{})
	return changed
}

// Generation returns the view cache generation the selection was last
// computed against.
func (m *Model) Generation() uint64 {
	return m.gen
}

// Reconcile compares the stored generation with the cache's current
// one and clears the selection on mismatch. It returns true when the
// selection was dropped. The indices are not remapped: a regenerated
// view may hold different rows at the same positions.
func (m *Model) Reconcile(gen uint64) bool {
	if gen == m.gen {
		return false
	}
	m.gen = gen
	if len(m.indices) == 0 {
		return false
	}
	m.indices = make(map[int]struct{})
	return true
}

// Select applies one click at the given display index with the given
// modifiers. rowCount bounds valid indices; out-of-range clicks and
// clicks in ModeNone are silent no-ops. It reports whether the set
// changed.
func (m *Model) Select(index int, mod Modifier, rowCount int) bool {
	if m.mode == ModeNone || index < 0 || index >= rowCount {
		return false
	}

	if m.mode == ModeSingle {
		return m.replaceWith(index)
	}

	switch {
	case mod&ModifierRange != 0:
		if len(m.indices) == 0 {
			return m.replaceWith(index)
		}
		return m.selectRange(index)
	case mod&ModifierToggle != 0:
		if _, ok := m.indices[index]; ok {
			delete(m.indices, index)
		} else {
			m.indices[index] = struct{}{}
		}
		return true
	default:
		return m.replaceWith(index)
	}
}

// replaceWith collapses the set to the single given index.
func (m *Model) replaceWith(index int) bool {
	if len(m.indices) == 1 {
		if _, ok := m.indices[index]; ok {
			return false
		}
	}
	m.indices = map[int]struct{}{index: {}}
	return true
}

// selectRange replaces the set with the contiguous range between the
// anchor (the largest selected index) and the clicked index.
func (m *Model) selectRange(index int) bool {
	anchor := m.maxIndex()
	lo, hi := anchor, index
	if lo > hi {
		lo, hi = hi, lo
	}
	next := make(map[int]struct{}, hi-lo+1)
	for i := lo; i <= hi; i++ {
		next[i] = struct{}{}
	}
	changed := len(next) != len(m.indices)
	if !changed {
		for i := range next {
			if _, ok := m.indices[i]; !ok {
				changed = true
				break
			}
		}
	}
	m.indices = next
	return changed
}

func (m *Model) maxIndex() int {
	max := -1
	for i := range m.indices {
		if i > max {
			max = i
		}
	}
	return max
}

// SelectAll selects every row of the current view. Only ModeMulti
// honors it. It reports whether the set changed.
func (m *Model) SelectAll(rowCount int) bool {
	if m.mode != ModeMulti || rowCount < 0 {
		return false
	}
	changed := len(m.indices) != rowCount
	next := make(map[int]struct{}, rowCount)
	for i := 0; i < rowCount; i++ {
		if _, ok := m.indices[i]; !ok {
			changed = true
		}
		next[i] = struct{}{}
	}
	m.indices = next
	return changed
}

// Clear empties the set and reports whether it held anything. Callers
// that need unconditional notification (an explicit clear command)
// emit regardless of the return value.
func (m *Model) Clear() bool {
	if len(m.indices) == 0 {
		return false
	}
	m.indices = make(map[int]struct{})
	return true
}

// Contains reports membership of a display index.
func (m *Model) Contains(index int) bool {
	_, ok := m.indices[index]
	return ok
}

// Len returns the selected row count.
func (m *Model) Len() int {
	return len(m.indices)
}

// Indices returns the selected display indices in ascending order.
func (m *Model) Indices() []int {
	out := make([]int, 0, len(m.indices))
	for i := range m.indices {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
