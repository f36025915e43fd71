package repositories

import (
	"slices"
	"sync"
)

// memStore is the in-memory table behind every repository. Values are
// cloned on the way in and out so callers never alias stored records.
type memStore[T any] struct {
	mu    sync.RWMutex
	order []string
	rows  map[string]*T
	id    func(*T) string
	clone func(*T) *T
}

func newMemStore[T any](id func(*T) string, clone func(*T) *T) *memStore[T] {
	return &memStore[T]{
		rows:  make(map[string]*T),
		id:    id,
		clone: clone,
	}
}

func (s *memStore[T]) reset(items []*T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked(items)
}

func (s *memStore[T]) resetLocked(items []*T) {
	s.rows = make(map[string]*T, len(items))
	s.order = s.order[:0]
	for _, item := range items {
		s.insertLocked(item)
	}
}

func (s *memStore[T]) insertLocked(item *T) {
	key := s.id(item)
	if _, exists := s.rows[key]; !exists {
		s.order = append(s.order, key)
	}
	s.rows[key] = s.clone(item)
}

func (s *memStore[T]) get(id string) (*T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, false
	}
	return s.clone(row), true
}

// all returns every row in insertion order.
func (s *memStore[T]) all() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*T, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.clone(s.rows[key]))
	}
	return out
}

func (s *memStore[T]) filter(keep func(*T) bool) []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*T
	for _, key := range s.order {
		if row := s.rows[key]; keep(row) {
			out = append(out, s.clone(row))
		}
	}
	return out
}

func (s *memStore[T]) count(keep func(*T) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if keep == nil {
		return len(s.rows)
	}
	n := 0
	for _, row := range s.rows {
		if keep(row) {
			n++
		}
	}
	return n
}

// insert stores item unless conflict reports a clash with an existing row.
func (s *memStore[T]) insert(item *T, conflict func(existing *T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conflict != nil {
		for _, row := range s.rows {
			if err := conflict(row); err != nil {
				return err
			}
		}
	}
	s.insertLocked(item)
	return nil
}

func (s *memStore[T]) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false
	}
	delete(s.rows, id)
	s.order = slices.DeleteFunc(s.order, func(key string) bool { return key == id })
	return true
}

// update runs fn on a copy of the row and commits the copy only when fn
// succeeds, so a rejected mutation never leaves partial state behind.
func (s *memStore[T]) update(id string, fn func(*T) error) (*T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, false, nil
	}

	draft := s.clone(row)
	if err := fn(draft); err != nil {
		return nil, true, err
	}
	s.rows[id] = draft
	return s.clone(draft), true, nil
}
