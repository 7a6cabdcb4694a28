package grid

import (
	"github.com/google/uuid"

	"github.com/dshills/gridkit/internal/event"
	"github.com/dshills/gridkit/internal/grid/column"
	"github.com/dshills/gridkit/internal/grid/edit"
	"github.com/dshills/gridkit/internal/grid/selection"
	"github.com/dshills/gridkit/internal/grid/view"
	"github.com/dshills/gridkit/internal/store"
)

// Engine coordinates the grid's sub-models over one record store.
type Engine struct {
	id string

	store   store.Store
	columns *column.Model
	drag    *column.Drag
	sorts   *view.SortState
	filters *view.Filters
	cache   *view.Cache
	sel     *selection.Model
	session *edit.Session
	events  *event.Dispatcher

	// notifying guards against re-entrant handling of the store
	// notifications the engine itself emits on commit.
	notifying bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithSelectionMode sets the initial selection mode. The default is
// ModeSingle.
func WithSelectionMode(mode selection.Mode) Option {
	return func(e *Engine) {
		e.sel = selection.NewModel(mode)
	}
}

// WithID sets the engine's instance identifier, used as the event
// source. The default is a fresh UUID, so two grids over the same
// store stay distinguishable.
func WithID(id string) Option {
	return func(e *Engine) {
		e.id = id
	}
}

// New creates an engine over the given store and column definitions.
// It fails only on construction-time caller bugs such as duplicate
// column fields.
func New(st store.Store, cols []column.Column, opts ...Option) (*Engine, error) {
	model, err := column.NewModel(cols)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		id:      "grid-" + uuid.NewString(),
		store:   st,
		columns: model,
		sorts:   view.NewSortState(model),
		sel:     selection.NewModel(selection.ModeSingle),
		session: edit.NewSession(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.drag = column.NewDrag(model)
	e.filters = view.NewFilters(model)
	e.cache = view.NewCache(st, e.sorts, e.filters)
	e.events = event.NewDispatcher(e.id)

	st.Subscribe(e.handleStoreMutation)
	return e, nil
}

// ID returns the engine's instance identifier.
func (e *Engine) ID() string {
	return e.id
}

// Subscribe registers a handler for one notification kind.
func (e *Engine) Subscribe(kind event.Kind, fn event.Handler) {
	e.events.Subscribe(kind, fn)
}

// CurrentRows returns the filtered, sorted display rows, recomputing
// first when the view is dirty. The slice is owned by the engine.
func (e *Engine) CurrentRows() []store.Record {
	return e.cache.Rows()
}

// Generation returns the view cache generation of the last
// materialization.
func (e *Engine) Generation() uint64 {
	return e.cache.Generation()
}

// handleStoreMutation treats any store notification as a view
// invalidation trigger.
func (e *Engine) handleStoreMutation(store.Mutation) {
	if e.notifying {
		return
	}
	e.resolveAndInvalidate()
}

// resolveAndInvalidate finalizes any active edit session, then marks
// the view dirty. Every path that regenerates the rows goes through
// here so a session's row reference never outlives the rows it points
// into.
func (e *Engine) resolveAndInvalidate() {
	e.resolveEdit()
	e.invalidateView()
}

// invalidateView marks the cache dirty and announces the stale
// generation. Repeated triggers before the next read coalesce into
// one recompute.
func (e *Engine) invalidateView() {
	stale := e.cache.Generation()
	e.cache.Invalidate()
	e.events.Publish(event.ViewInvalidated, event.ViewPayload{Generation: stale})
}
