// Package grid provides the grid engine: the facade coordinating the
// column model, sort state, filter set, view cache, selection and the
// in-place edit session over one record store. It is the renderer's
// sole contact point.
//
// The engine is single-threaded and cooperative. Every command runs to
// completion before returning, notifications are dispatched
// synchronously, and invalid references (unknown fields, out-of-range
// indices) are silent no-ops because the renderer that drives the
// engine may act on stale state.
package grid
