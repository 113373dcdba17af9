// Package sorter provides TopKSort, the "sort n items, return the k smallest
// in order" primitive used by the graph algorithms to order edges.
//
// Strategy: keep the k smallest items seen so far in a bounded 4-ary heap
// whose comparator is reversed, so its root is the largest of the kept items.
// Each remaining item either replaces that root or is dropped. Draining the
// heap yields the kept items largest-first, which are written back to front.
//
// Complexity: O(n log k) time, O(k) extra space.
//
// Ordering among items that compare equal is unspecified. Callers that need a
// deterministic tie-break must encode it into the comparator.
package sorter

import (
	"cmp"
	"errors"

	"github.com/katalvlaran/lvlds/pqueue"
)

// ErrInvalidInput indicates a negative k, a nil comparator or a nil item.
var ErrInvalidInput = errors.New("sorter: invalid input")

// TopKSort returns the k smallest items of input, ordered ascending by
// compare. If k >= len(input) every item is returned sorted. input is not
// modified. A negative k, a nil compare or a nil-equivalent item yields
// ErrInvalidInput.
func TopKSort[T any](k int, input []T, compare func(a, b T) int) ([]T, error) {
	if k < 0 {
		return nil, ErrInvalidInput
	}
	if compare == nil {
		return nil, ErrInvalidInput
	}
	k = min(k, len(input))
	if k == 0 {
		return []T{}, nil
	}

	// largest-first heap over the current k best candidates
	kept := pqueue.NewFunc(func(a, b T) int { return compare(b, a) })
	for _, it := range input {
		if kept.Size() < k {
			if err := kept.Insert(it); err != nil {
				return nil, ErrInvalidInput
			}
			continue
		}
		top, err := kept.PeekMin()
		if err != nil {
			return nil, err
		}
		if compare(it, top) < 0 {
			if _, err = kept.RemoveMin(); err != nil {
				return nil, err
			}
			if err = kept.Insert(it); err != nil {
				return nil, ErrInvalidInput
			}
		}
	}

	out := make([]T, k)
	for i := k - 1; i >= 0; i-- {
		v, err := kept.RemoveMin()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// TopKSortOrdered is TopKSort using the natural order of T.
func TopKSortOrdered[T cmp.Ordered](k int, input []T) ([]T, error) {
	return TopKSort(k, input, cmp.Compare[T])
}
