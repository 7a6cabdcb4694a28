// Package event provides the grid engine's notification dispatch.
//
// The engine announces state changes (view invalidation, selection
// changes, column layout changes, edit lifecycle) as typed events.
// Dispatch is synchronous and fire-and-forget: subscribers for a kind
// run in registration order before the publishing call returns, and a
// panicking subscriber never takes the engine down.
//
// The dispatcher is deliberately smaller than a general-purpose bus:
// no topics, no wildcards, no async delivery. The engine is
// single-threaded and cooperative, so event ordering is call ordering.
package event
