// Package view computes the grid's displayed row set: the store's
// records AND-filtered by the active per-column predicates, then
// stably sorted by the single active sort descriptor.
//
// The cache recomputes lazily on first read after an invalidation and
// stamps every materialization with a monotonic generation. Row
// indices held elsewhere (selection, an edit session) are only valid
// against the generation they were taken from; a generation mismatch
// means the index is meaningless and must be reconciled or dropped.
package view
