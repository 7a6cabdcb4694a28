package grid

import (
	"github.com/dshills/gridkit/internal/config"
	"github.com/dshills/gridkit/internal/event"
	"github.com/dshills/gridkit/internal/grid/column"
)

// Layout captures the current column layout as a persistable blob.
func (e *Engine) Layout() config.Layout {
	order := e.columns.Order()
	l := config.Layout{
		Visibility: make(map[string]bool, len(order)),
		Order:      order,
		Widths:     make(map[string]column.Width, len(order)),
	}
	for _, field := range order {
		c, _ := e.columns.Get(field)
		l.Visibility[field] = !c.Hidden
		l.Widths[field] = c.Width
	}
	return l
}

// ApplyLayout restores a saved column layout. Visibility and order
// changes are announced per column, so a renderer listening only to
// notifications stays current; fields unknown to this grid are
// ignored, and columns the blob omits keep their current state.
func (e *Engine) ApplyLayout(l config.Layout) {
	for field, visible := range l.Visibility {
		e.SetColumnVisible(field, visible)
	}
	before := e.columns.Order()
	e.columns.ApplyLayout(nil, l.Order, l.Widths)
	for newIdx, field := range e.columns.Order() {
		oldIdx := indexOf(before, field)
		if oldIdx != newIdx {
			e.events.Publish(event.ColumnReordered, event.ReorderPayload{
				Field:    field,
				OldIndex: oldIdx,
				NewIndex: newIdx,
			})
		}
	}
}

func indexOf(fields []string, field string) int {
	for i, f := range fields {
		if f == field {
			return i
		}
	}
	return -1
}
