// Package edit tracks the grid's single in-place edit session and the
// type coercion applied when a session commits.
//
// At most one cell is editable at a time. The session is pure state:
// the engine facade decides when a prior session is implicitly
// committed and performs the actual record write, so the session never
// touches the store.
package edit
