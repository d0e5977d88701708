// Package store provides a generic ordered in-memory collection of records
// keyed by a string id, with a monotonically increasing id counter.
//
// Every operation takes the store mutex, so reads immediately following a
// mutation observe it even when gin serves requests on concurrent workers.
package store

import (
	"strconv"
	"sync"
)

// Store is an ordered collection of records of type T. Order is whatever the
// callers establish through InsertFront/InsertBack; deletes preserve the
// relative order of the remaining records.
type Store[T any] struct {
	mu     sync.RWMutex
	items  []T
	nextID int64
	idOf   func(T) string
}

// New creates a store seeded with the given records. The id counter starts
// above the highest numeric id found in the seed, so seeded ids are never
// reissued.
func New[T any](idOf func(T) string, seed []T) *Store[T] {
	s := &Store[T]{
		items:  append([]T(nil), seed...),
		nextID: 1,
		idOf:   idOf,
	}
	for _, item := range seed {
		if n, err := strconv.ParseInt(idOf(item), 10, 64); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}
	return s
}

// NextID returns a fresh id as a decimal string and advances the counter.
// Ids are never reused.
func (s *Store[T]) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := strconv.FormatInt(s.nextID, 10)
	s.nextID++
	return id
}

// InsertFront prepends a record, making it the first element of List.
func (s *Store[T]) InsertFront(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]T{item}, s.items...)
}

// InsertBack appends a record.
func (s *Store[T]) InsertBack(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// Get returns the record with the given id, or false if none matches.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if s.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Update applies mutate to the record with the given id in place.
// Returns false when no record matches.
func (s *Store[T]) Update(id string, mutate func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.idOf(s.items[i]) == id {
			mutate(&s.items[i])
			return true
		}
	}
	return false
}

// UpdateAll applies mutate to every record, in order.
func (s *Store[T]) UpdateAll(mutate func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		mutate(&s.items[i])
	}
}

// Delete removes the record with the given id and reports how many records
// were removed. Ids are unique, so the count is 0 or 1.
func (s *Store[T]) Delete(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	removed := 0
	for _, item := range s.items {
		if s.idOf(item) == id {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	return removed
}

// List returns a snapshot of the collection in its current order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.items...)
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Count returns the number of records for which match reports true.
func (s *Store[T]) Count(match func(T) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, item := range s.items {
		if match(item) {
			n++
		}
	}
	return n
}
