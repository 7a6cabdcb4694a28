// Package column provides the grid's column model: the column set and
// its mutable layout (order, visibility, width), plus the pointer-drag
// reorder controller.
//
// Columns are created once at model construction and identified by
// their field key. Only visibility, width and order position change
// afterwards. The visible ordered projection is recomputed on demand
// and never cached, so it can never disagree with the layout state.
package column
