package grid

import (
	"github.com/dshills/gridkit/internal/event"
	"github.com/dshills/gridkit/internal/grid/column"
)

// VisibleOrderedColumns returns the visible columns in display order.
func (e *Engine) VisibleOrderedColumns() []column.Column {
	return e.columns.VisibleOrdered()
}

// ColumnOrder returns the full column order sequence.
func (e *Engine) ColumnOrder() []string {
	return e.columns.Order()
}

// Column returns the column definition for a field.
func (e *Engine) Column(field string) (column.Column, bool) {
	return e.columns.Get(field)
}

// SetColumnVisible shows or hides a column. Hiding every column is
// allowed. Unknown fields are ignored.
func (e *Engine) SetColumnVisible(field string, visible bool) {
	if e.columns.SetVisible(field, visible) {
		e.events.Publish(event.ColumnVisibilityChanged, event.VisibilityPayload{
			Field:   field,
			Visible: visible,
		})
	}
}

// SetColumnWidth sets a fixed pixel width, clamped to the minimum.
// Unknown fields are ignored.
func (e *Engine) SetColumnWidth(field string, px int) {
	e.columns.SetWidth(field, px)
}

// ReorderColumn moves a column next to a pivot column. Unknown fields
// and field == pivot are ignored.
func (e *Engine) ReorderColumn(field, pivot string, side column.Side) {
	if oldIdx, newIdx, moved := e.columns.Reorder(field, pivot, side); moved {
		e.events.Publish(event.ColumnReordered, event.ReorderPayload{
			Field:    field,
			OldIndex: oldIdx,
			NewIndex: newIdx,
		})
	}
}

// BeginColumnDrag starts a pointer drag of the given column.
func (e *Engine) BeginColumnDrag(field string) {
	e.drag.Begin(field)
}

// DropColumn ends a pointer drag, landing the dragged column on the
// given side of target. The side is renderer-computed geometry, not
// derived here.
func (e *Engine) DropColumn(target string, side column.Side) {
	field, active := e.drag.Active()
	if !active {
		return
	}
	if oldIdx, newIdx, moved := e.drag.DropAt(target, side); moved {
		e.events.Publish(event.ColumnReordered, event.ReorderPayload{
			Field:    field,
			OldIndex: oldIdx,
			NewIndex: newIdx,
		})
	}
}

// CancelColumnDrag abandons a pointer drag without moving anything.
func (e *Engine) CancelColumnDrag() {
	e.drag.Cancel()
}
