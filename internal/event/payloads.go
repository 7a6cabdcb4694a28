package event

// SelectionPayload accompanies SelectionChanged. Records holds the
// selected records mapped through the current view rows.
type SelectionPayload struct {
	Indices []int
	Records []map[string]any
}

// VisibilityPayload accompanies ColumnVisibilityChanged.
type VisibilityPayload struct {
	Field   string
	Visible bool
}

// ReorderPayload accompanies ColumnReordered.
type ReorderPayload struct {
	Field    string
	OldIndex int
	NewIndex int
}

// EditPayload accompanies EditStarted, EditCommitted and EditCancelled.
// OldValue and NewValue are populated for EditCommitted only.
type EditPayload struct {
	RowIndex int
	Field    string
	OldValue any
	NewValue any
}

// ViewPayload accompanies ViewInvalidated. Generation is the view cache
// generation that became stale.
type ViewPayload struct {
	Generation uint64
}
