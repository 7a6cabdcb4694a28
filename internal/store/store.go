package store

// Record is one row's underlying data object, keyed by field name.
// Records are owned by the store; the engine mutates a record in place
// only when committing an edit, and announces the write through the
// store so every consumer observes it.
type Record map[string]any

// Same reports whether two records are the same map object. Maps
// sharing storage observe each other's writes, so identity is detected
// with a scratch key that cannot collide with field names.
func Same(a, b Record) bool {
	if a == nil || b == nil {
		return false
	}
	const probe = "\x00gridkit.identity"
	a[probe] = struct{}{}
	_, shared := b[probe]
	delete(a, probe)
	return shared
}

// MutationKind identifies the kind of store mutation being announced.
type MutationKind uint8

const (
	// MutationLoad signals the record list was replaced wholesale.
	MutationLoad MutationKind = iota
	// MutationAdd signals a single record was appended.
	MutationAdd
	// MutationRemove signals a single record was removed.
	MutationRemove
	// MutationUpdate signals an unspecified record change.
	MutationUpdate
	// MutationRecordUpdate signals a single field of a single record
	// changed; Field, OldValue and NewValue are populated.
	MutationRecordUpdate
	// MutationClear signals all records were removed.
	MutationClear
	// MutationSort signals the store reordered its records.
	MutationSort
	// MutationFilter signals the store filtered its records.
	MutationFilter
)

// String returns the lowercase event name for the mutation kind.
func (k MutationKind) String() string {
	switch k {
	case MutationLoad:
		return "load"
	case MutationAdd:
		return "add"
	case MutationRemove:
		return "remove"
	case MutationUpdate:
		return "update"
	case MutationRecordUpdate:
		return "recordupdate"
	case MutationClear:
		return "clear"
	case MutationSort:
		return "sort"
	case MutationFilter:
		return "filter"
	default:
		return "unknown"
	}
}

// Mutation describes one store change. Fields beyond Kind are populated
// only where they make sense for the kind.
type Mutation struct {
	Kind     MutationKind
	Record   Record
	Index    int
	Field    string
	OldValue any
	NewValue any
}

// Subscriber receives mutation notifications. Delivery is synchronous:
// the subscriber runs before the mutating call returns.
type Subscriber func(Mutation)

// Store is the record collection contract the engine consumes.
type Store interface {
	// Records returns the authoritative record list in store order.
	// The returned slice must not be mutated by callers.
	Records() []Record

	// Count returns the number of records.
	Count() int

	// At returns the record at the given store index, or nil when the
	// index is out of range.
	At(index int) Record

	// Add appends a record and announces MutationAdd.
	Add(rec Record)

	// Remove removes the first occurrence of the record and announces
	// MutationRemove. Unknown records are ignored.
	Remove(rec Record)

	// Subscribe registers a subscriber for all mutation kinds.
	Subscribe(fn Subscriber)

	// NotifyRecordUpdate announces an in-place field write performed by
	// an external party (the edit session): MutationRecordUpdate first,
	// then a generic MutationUpdate.
	NotifyRecordUpdate(rec Record, index int, field string, oldValue, newValue any)
}
