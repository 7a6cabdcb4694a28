// Package store defines the record collection contract consumed by the
// grid engine, the typed mutation notifications it emits, and a
// slice-backed in-memory implementation.
//
// The store owns the authoritative record list. The engine only reads
// records and requests mutations; every mutation is announced to
// subscribers as a typed Mutation so dependent state (the view cache,
// selection, an in-flight edit) can react.
package store
