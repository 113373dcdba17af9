// Package list provides a generic doubly linked list with index-based access.
//
// Index operations walk from whichever end of the list is nearer, so Get,
// Set, Insert and Delete cost O(min(i, n-i)). Appending, prepending and
// removing from either end are O(1).
package list

import (
	"errors"
	"iter"
)

var (
	// ErrEmptyContainer indicates Remove on an empty list.
	ErrEmptyContainer = errors.New("list: container is empty")

	// ErrIndexOutOfBounds indicates an index outside the valid range.
	ErrIndexOutOfBounds = errors.New("list: index out of bounds")
)

// Double is a doubly linked list. The zero value is not usable; call New.
type Double[T comparable] struct {
	sentinel node[T] // sentinel.next is the front, sentinel.prev the back
	size     int
}

type node[T comparable] struct {
	prev, next *node[T]
	data       T
}

// New returns an empty list holding the given items in order.
func New[T comparable](items ...T) *Double[T] {
	l := &Double[T]{}
	l.sentinel.next = &l.sentinel
	l.sentinel.prev = &l.sentinel
	for _, it := range items {
		l.Add(it)
	}

	return l
}

// linkAfter places a new node holding item directly after at.
func (l *Double[T]) linkAfter(at *node[T], item T) {
	n := &node[T]{data: item, prev: at, next: at.next}
	at.next.prev = n
	at.next = n
	l.size++
}

// unlink detaches n and returns its payload.
func (l *Double[T]) unlink(n *node[T]) T {
	n.prev.next = n.next
	n.next.prev = n.prev
	l.size--
	data := n.data
	*n = node[T]{}

	return data
}

// nodeAt returns the node at index i, walking from the nearer end.
// The caller guarantees 0 <= i < size.
func (l *Double[T]) nodeAt(i int) *node[T] {
	if i < l.size/2 {
		n := l.sentinel.next
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := l.sentinel.prev
	for j := l.size - 1; j > i; j-- {
		n = n.prev
	}

	return n
}

// Add appends item to the back of the list.
func (l *Double[T]) Add(item T) {
	l.linkAfter(l.sentinel.prev, item)
}

// Remove removes and returns the item at the back of the list.
func (l *Double[T]) Remove() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	return l.unlink(l.sentinel.prev), nil
}

// Get returns the item at index.
func (l *Double[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, ErrIndexOutOfBounds
	}

	return l.nodeAt(index).data, nil
}

// Set replaces the item at index.
func (l *Double[T]) Set(index int, item T) error {
	if index < 0 || index >= l.size {
		return ErrIndexOutOfBounds
	}
	l.nodeAt(index).data = item

	return nil
}

// Insert places item at index, shifting later items back by one.
// index may equal Size, which appends.
func (l *Double[T]) Insert(index int, item T) error {
	if index < 0 || index > l.size {
		return ErrIndexOutOfBounds
	}
	switch {
	case index == l.size:
		l.linkAfter(l.sentinel.prev, item)
	case index == 0:
		l.linkAfter(&l.sentinel, item)
	default:
		l.linkAfter(l.nodeAt(index).prev, item)
	}

	return nil
}

// Delete removes and returns the item at index.
func (l *Double[T]) Delete(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, ErrIndexOutOfBounds
	}

	return l.unlink(l.nodeAt(index)), nil
}

// IndexOf returns the index of the first item equal to item, or -1.
func (l *Double[T]) IndexOf(item T) int {
	i := 0
	for n := l.sentinel.next; n != &l.sentinel; n = n.next {
		if n.data == item {
			return i
		}
		i++
	}

	return -1
}

// Contains reports whether item is in the list.
func (l *Double[T]) Contains(item T) bool {
	return l.IndexOf(item) >= 0
}

// Size returns the number of items.
func (l *Double[T]) Size() int {
	return l.size
}

// All iterates front to back.
func (l *Double[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.sentinel.next; n != &l.sentinel; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Backward iterates back to front.
func (l *Double[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.sentinel.prev; n != &l.sentinel; n = n.prev {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Slice copies the items into a new slice, front to back.
func (l *Double[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}
