// Package selection tracks the selected row set of a grid view.
//
// Indices reference display positions in the current view cache, not
// store positions. The model records the cache generation it was
// computed against; when the generation moves on, the held indices are
// meaningless and the model clears itself rather than silently
// pointing at different rows.
package selection
