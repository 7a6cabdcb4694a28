package grid

import (
	"github.com/dshills/gridkit/internal/event"
	"github.com/dshills/gridkit/internal/grid/selection"
	"github.com/dshills/gridkit/internal/store"
)

// syncSelection materializes the view and drops a selection computed
// against an older generation; indices are positional and are not
// remapped across regenerations. Dropping a non-empty selection is
// announced like any other selection change.
func (e *Engine) syncSelection() []store.Record {
	rows := e.cache.Rows()
	if e.sel.Reconcile(e.cache.Generation()) {
		e.emitSelection(rows)
	}
	return rows
}

func (e *Engine) emitSelection(rows []store.Record) {
	indices := e.sel.Indices()
	records := make([]map[string]any, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(rows) {
			records = append(records, rows[i])
		}
	}
	e.events.Publish(event.SelectionChanged, event.SelectionPayload{
		Indices: indices,
		Records: records,
	})
}

// Select applies one row click with the given modifiers. Out-of-range
// indices are ignored.
func (e *Engine) Select(index int, mod selection.Modifier) {
	rows := e.syncSelection()
	if e.sel.Select(index, mod, len(rows)) {
		e.emitSelection(rows)
	}
}

// SelectAll selects every display row. Only multi mode honors it.
func (e *Engine) SelectAll() {
	rows := e.syncSelection()
	if e.sel.SelectAll(len(rows)) {
		e.emitSelection(rows)
	}
}

// ClearSelection empties the selection. It always announces, even when
// the set was already empty: an explicit clear is caller intent.
func (e *Engine) ClearSelection() {
	rows := e.syncSelection()
	e.sel.Clear()
	e.emitSelection(rows)
}

// SelectedIndices returns the selected display indices in ascending
// order, reconciled against the current view.
func (e *Engine) SelectedIndices() []int {
	e.syncSelection()
	return e.sel.Indices()
}

// SelectedRecords returns the selected records mapped through the
// current display rows.
func (e *Engine) SelectedRecords() []store.Record {
	rows := e.syncSelection()
	indices := e.sel.Indices()
	out := make([]store.Record, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(rows) {
			out = append(out, rows[i])
		}
	}
	return out
}

// SelectionMode returns the current selection mode.
func (e *Engine) SelectionMode() selection.Mode {
	return e.sel.Mode()
}

// SetSelectionMode switches the selection mode, clearing the set.
func (e *Engine) SetSelectionMode(mode selection.Mode) {
	rows := e.syncSelection()
	if e.sel.SetMode(mode) {
		e.emitSelection(rows)
	}
}
