package pqueue

import (
	"cmp"
	"errors"

	"github.com/katalvlaran/lvlds/internal/validate"
)

// Sentinel errors returned by Heap.
var (
	// ErrInvalidInput indicates a nil-equivalent item was offered to Insert.
	ErrInvalidInput = errors.New("pqueue: invalid input")

	// ErrEmptyContainer indicates PeekMin or RemoveMin on an empty queue.
	ErrEmptyContainer = errors.New("pqueue: container is empty")
)

const (
	// arity is the number of children per node.
	arity = 4

	// defaultCapacity is the initial physical size of the backing slice.
	defaultCapacity = 20
)

// Heap is a 4-ary min-heap. For every index i > 0,
// cmp(items[(i-1)/4], items[i]) <= 0.
type Heap[T any] struct {
	items []T // len(items) is the physical capacity
	size  int // logical element count
	cmp   func(a, b T) int
}

// New returns an empty heap ordered by cmp.Compare.
func New[T cmp.Ordered]() *Heap[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc returns an empty heap ordered by compare, which must return a
// negative number when a < b, zero when equal and a positive number when a > b.
// Panics if compare is nil.
func NewFunc[T any](compare func(a, b T) int) *Heap[T] {
	if compare == nil {
		panic("pqueue: NewFunc(nil)")
	}

	return &Heap[T]{
		items: make([]T, defaultCapacity),
		cmp:   compare,
	}
}

// Size returns the number of queued elements.
func (h *Heap[T]) Size() int { return h.size }

// IsEmpty reports whether the queue holds no elements.
func (h *Heap[T]) IsEmpty() bool { return h.size == 0 }

// Cap returns the current physical capacity of the backing storage.
func (h *Heap[T]) Cap() int { return len(h.items) }

// Insert adds item to the queue.
//
// Steps:
//  1. Reject nil-equivalent items with ErrInvalidInput.
//  2. Double the backing storage when it is full.
//  3. Append at index size and sift up: swap with the parent at (i-1)/4 while
//     the parent is strictly greater.
//
// Complexity: O(log₄ n) amortized.
func (h *Heap[T]) Insert(item T) error {
	if validate.IsNil(item) {
		return ErrInvalidInput
	}
	if h.size == len(h.items) {
		grown := make([]T, 2*len(h.items))
		copy(grown, h.items)
		h.items = grown
	}
	h.items[h.size] = item
	h.size++
	h.up(h.size - 1)

	return nil
}

// PeekMin returns the smallest element without removing it.
// Complexity: O(1).
func (h *Heap[T]) PeekMin() (T, error) {
	if h.size == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	return h.items[0], nil
}

// RemoveMin removes and returns the smallest element.
//
// The last element is moved into the root slot, the logical size shrinks by
// one and the new root sifts down towards its smallest child until no child is
// smaller or it reaches a leaf.
//
// Complexity: O(4 · log₄ n).
func (h *Heap[T]) RemoveMin() (T, error) {
	var zero T
	if h.size == 0 {
		return zero, ErrEmptyContainer
	}
	out := h.items[0]
	h.size--
	h.items[0] = h.items[h.size]
	h.items[h.size] = zero // release the reference held by the vacated slot
	h.down(0)

	return out, nil
}

// up restores the heap property from index i towards the root.
func (h *Heap[T]) up(i int) {
	for i > 0 {
		p := (i - 1) / arity
		if h.cmp(h.items[p], h.items[i]) <= 0 {
			return
		}
		h.items[p], h.items[i] = h.items[i], h.items[p]
		i = p
	}
}

// down restores the heap property from index i towards the leaves.
func (h *Heap[T]) down(i int) {
	for {
		first := arity*i + 1
		if first >= h.size {
			return // leaf
		}
		smallest := first
		last := min(first+arity, h.size)
		for c := first + 1; c < last; c++ {
			if h.cmp(h.items[c], h.items[smallest]) < 0 {
				smallest = c
			}
		}
		if h.cmp(h.items[smallest], h.items[i]) >= 0 {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
