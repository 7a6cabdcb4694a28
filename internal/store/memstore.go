package store

import (
	"sort"
	"sync"
)

// MemStore is a slice-backed Store implementation. It is the reference
// collection used by tests and the demo; applications with their own
// record source implement Store directly.
//
// A mutex guards the record list so subscribers, which run
// synchronously while the mutating call holds no lock, may read back
// into the store. The records themselves are plain maps under the
// engine's single-threaded ownership rules: identity checks (Same)
// probe a record with a transient write, so records must not be
// touched from other goroutines.
type MemStore struct {
	mu      sync.RWMutex
	records []Record
	subs    []Subscriber
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Records returns the record list in store order.
func (s *MemStore) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Count returns the number of records.
func (s *MemStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// At returns the record at index, or nil when out of range.
func (s *MemStore) At(index int) Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.records) {
		return nil
	}
	return s.records[index]
}

// Load replaces the record list wholesale and announces MutationLoad.
func (s *MemStore) Load(records []Record) {
	s.mu.Lock()
	s.records = make([]Record, len(records))
	copy(s.records, records)
	s.mu.Unlock()
	s.notify(Mutation{Kind: MutationLoad})
}

// Add appends a record and announces MutationAdd.
func (s *MemStore) Add(rec Record) {
	s.mu.Lock()
	s.records = append(s.records, rec)
	index := len(s.records) - 1
	s.mu.Unlock()
	s.notify(Mutation{Kind: MutationAdd, Record: rec, Index: index})
}

// Remove removes the first occurrence of rec and announces
// MutationRemove. Unknown records are ignored.
func (s *MemStore) Remove(rec Record) {
	s.mu.Lock()
	index := -1
	for i, r := range s.records {
		if Same(r, rec) {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return
	}
	s.records = append(s.records[:index], s.records[index+1:]...)
	s.mu.Unlock()
	s.notify(Mutation{Kind: MutationRemove, Record: rec, Index: index})
}

// RemoveAt removes the record at index and announces MutationRemove.
// Out-of-range indices are ignored.
func (s *MemStore) RemoveAt(index int) {
	s.mu.Lock()
	if index < 0 || index >= len(s.records) {
		s.mu.Unlock()
		return
	}
	rec := s.records[index]
	s.records = append(s.records[:index], s.records[index+1:]...)
	s.mu.Unlock()
	s.notify(Mutation{Kind: MutationRemove, Record: rec, Index: index})
}

// Clear removes all records and announces MutationClear.
func (s *MemStore) Clear() {
	s.mu.Lock()
	s.records = nil
	s.mu.Unlock()
	s.notify(Mutation{Kind: MutationClear})
}

// SortRecords reorders the store in place using the given comparison
// and announces MutationSort. The sort is stable.
func (s *MemStore) SortRecords(less func(a, b Record) bool) {
	s.mu.Lock()
	sort.SliceStable(s.records, func(i, j int) bool {
		return less(s.records[i], s.records[j])
	})
	s.mu.Unlock()
	s.notify(Mutation{Kind: MutationSort})
}

// Subscribe registers a subscriber for all mutation kinds.
func (s *MemStore) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// NotifyRecordUpdate announces an in-place field write:
// MutationRecordUpdate first, then a generic MutationUpdate.
func (s *MemStore) NotifyRecordUpdate(rec Record, index int, field string, oldValue, newValue any) {
	s.notify(Mutation{
		Kind:     MutationRecordUpdate,
		Record:   rec,
		Index:    index,
		Field:    field,
		OldValue: oldValue,
		NewValue: newValue,
	})
	s.notify(Mutation{Kind: MutationUpdate, Record: rec, Index: index})
}

// notify delivers a mutation to all subscribers synchronously.
func (s *MemStore) notify(m Mutation) {
	s.mu.RLock()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(m)
	}
}

