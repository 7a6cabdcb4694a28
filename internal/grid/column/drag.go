package column

// Drag is the pointer-drag reorder controller. The renderer feeds it
// geometry-derived inputs (which column the pointer is over and which
// half of it); the controller owns no geometry itself.
type Drag struct {
	model *Model

	active    bool
	field     string
	fromIndex int
}

// NewDrag creates a drag controller over the given model.
func NewDrag(model *Model) *Drag {
	return &Drag{model: model}
}

// Begin starts dragging the given column, recording its current order
// position. Unknown fields are ignored.
func (d *Drag) Begin(field string) {
	idx := d.model.OrderIndex(field)
	if idx < 0 {
		return
	}
	d.active = true
	d.field = field
	d.fromIndex = idx
}

// Active reports whether a drag is in progress and, if so, the dragged
// field.
func (d *Drag) Active() (string, bool) {
	return d.field, d.active
}

// DropAt ends the drag by reinserting the dragged column on the given
// side of target. It reports the old and new order positions and
// whether the column moved. Dropping on the dragged column itself, or
// with no drag active, is a no-op.
func (d *Drag) DropAt(target string, side Side) (oldIndex, newIndex int, moved bool) {
	if !d.active {
		return 0, 0, false
	}
	field := d.field
	d.active = false
	d.field = ""
	if target == field {
		return 0, 0, false
	}
	return d.model.Reorder(field, target, side)
}

// Cancel abandons the drag without changing the order.
func (d *Drag) Cancel() {
	d.active = false
	d.field = ""
}
