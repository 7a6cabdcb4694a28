package grid

import (
	"github.com/dshills/gridkit/internal/event"
	"github.com/dshills/gridkit/internal/grid/edit"
	"github.com/dshills/gridkit/internal/store"
)

// CurrentEdit returns the active edit session state, if any.
func (e *Engine) CurrentEdit() (edit.State, bool) {
	return e.session.Active()
}

// StartEdit begins editing the cell at the given display row and
// field. A different active session is implicitly committed first,
// never silently discarded. Unknown fields and out-of-range rows are
// ignored; restarting the identical cell is a no-op only while the
// view generation is unchanged — the same row index against a newer
// generation names a different cell, so the old session is resolved
// and a fresh one binds the record now at that row.
func (e *Engine) StartEdit(rowIndex int, field string) {
	if _, ok := e.columns.Get(field); !ok {
		return
	}
	rows := e.cache.Rows()
	if rowIndex < 0 || rowIndex >= len(rows) {
		return
	}
	if st, ok := e.session.Active(); ok &&
		st.RowIndex == rowIndex && st.Field == field &&
		st.Generation == e.cache.Generation() {
		return
	}
	e.resolveEdit()
	rec := rows[rowIndex]
	e.session.Start(rowIndex, field, rec, e.cache.Generation())
	e.events.Publish(event.EditStarted, event.EditPayload{
		RowIndex: rowIndex,
		Field:    field,
		OldValue: rec[field],
	})
}

// CommitEdit ends the active session, writing raw onto the edited
// record coerced per the column type. The write is announced through
// the store as a recordupdate followed by a generic update. Without an
// active session it is a no-op.
func (e *Engine) CommitEdit(raw string) {
	st, ok := e.session.End()
	if !ok {
		return
	}
	col, _ := e.columns.Get(st.Field)
	value := edit.Coerce(col.Type, raw)

	st.Record[st.Field] = value

	e.notifying = true
	e.store.NotifyRecordUpdate(st.Record, e.storeIndexOf(st.Record), st.Field, st.Original, value)
	e.notifying = false

	e.events.Publish(event.EditCommitted, event.EditPayload{
		RowIndex: st.RowIndex,
		Field:    st.Field,
		OldValue: st.Original,
		NewValue: value,
	})
	e.invalidateView()
}

// CancelEdit discards the active session. The record was never
// mutated, so nothing is written or announced to the store.
func (e *Engine) CancelEdit() {
	st, ok := e.session.End()
	if !ok {
		return
	}
	e.events.Publish(event.EditCancelled, event.EditPayload{
		RowIndex: st.RowIndex,
		Field:    st.Field,
		OldValue: st.Original,
	})
}

// resolveEdit finalizes an active session before the rows it
// references change: an implicit commit when the edited record still
// exists, a cancel when it is gone. The implicit commit writes nothing
// because no replacement value was ever supplied; it only closes the
// session loudly.
func (e *Engine) resolveEdit() {
	st, ok := e.session.Active()
	if !ok {
		return
	}
	e.session.End()
	if e.storeIndexOf(st.Record) < 0 {
		e.events.Publish(event.EditCancelled, event.EditPayload{
			RowIndex: st.RowIndex,
			Field:    st.Field,
			OldValue: st.Original,
		})
		return
	}
	e.events.Publish(event.EditCommitted, event.EditPayload{
		RowIndex: st.RowIndex,
		Field:    st.Field,
		OldValue: st.Original,
		NewValue: st.Record[st.Field],
	})
}

// storeIndexOf locates a record in the store by identity, or -1.
func (e *Engine) storeIndexOf(rec store.Record) int {
	for i, r := range e.store.Records() {
		if store.Same(r, rec) {
			return i
		}
	}
	return -1
}
