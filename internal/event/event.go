package event

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies one engine notification.
type Kind uint8

const (
	// ViewInvalidated signals the view cache was marked dirty; any held
	// row indices are stale and must be re-read.
	ViewInvalidated Kind = iota
	// SelectionChanged signals the selected row set changed.
	SelectionChanged
	// ColumnVisibilityChanged signals a column was hidden or shown.
	ColumnVisibilityChanged
	// ColumnReordered signals a column moved to a new order position.
	ColumnReordered
	// EditStarted signals an in-place edit session began.
	EditStarted
	// EditCommitted signals an edit session wrote its value.
	EditCommitted
	// EditCancelled signals an edit session was discarded.
	EditCancelled

	kindCount
)

// String returns the event kind name.
func (k Kind) String() string {
	switch k {
	case ViewInvalidated:
		return "view.invalidated"
	case SelectionChanged:
		return "selection.changed"
	case ColumnVisibilityChanged:
		return "column.visibility"
	case ColumnReordered:
		return "column.reordered"
	case EditStarted:
		return "edit.started"
	case EditCommitted:
		return "edit.committed"
	case EditCancelled:
		return "edit.cancelled"
	default:
		return "unknown"
	}
}

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was published.
	Timestamp time.Time

	// Source identifies the engine instance that published the event.
	Source string
}

// Event is one engine notification. Payload contents depend on Kind;
// see the payload types in this package.
type Event struct {
	Kind     Kind
	Payload  any
	Metadata Metadata
}

// New creates an event with fresh metadata.
func New(kind Kind, payload any, source string) Event {
	return Event{
		Kind:    kind,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}
