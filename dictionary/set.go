package dictionary

import "iter"

// Set is an unordered collection of unique items backed by a ChainedHash.
type Set[T comparable] struct {
	items *ChainedHash[T, struct{}]
}

// NewSet returns a Set holding the given items.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{items: NewChainedHash[T, struct{}]()}
	for _, it := range items {
		s.Add(it)
	}

	return s
}

// Add inserts item. Adding an item that is already present is a no-op.
func (s *Set[T]) Add(item T) {
	s.items.Put(item, struct{}{})
}

// Remove deletes item, or returns ErrNoSuchKey if it is absent.
func (s *Set[T]) Remove(item T) error {
	_, err := s.items.Remove(item)
	return err
}

// Contains reports whether item is present.
func (s *Set[T]) Contains(item T) bool {
	return s.items.ContainsKey(item)
}

// Size returns the number of items.
func (s *Set[T]) Size() int {
	return s.items.Size()
}

// All iterates over the items in the underlying dictionary's order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range s.items.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Slice returns the items as a new slice in iteration order.
func (s *Set[T]) Slice() []T {
	out := make([]T, 0, s.Size())
	for it := range s.All() {
		out = append(out, it)
	}

	return out
}
