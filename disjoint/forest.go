package disjoint

import (
	"errors"

	"github.com/katalvlaran/lvlds/dictionary"
)

// Sentinel errors returned by Forest.
var (
	// ErrDuplicateElement indicates MakeSet was called twice for one element.
	ErrDuplicateElement = errors.New("disjoint: element already registered")

	// ErrUnknownElement indicates an operation referenced an element that was
	// never passed to MakeSet.
	ErrUnknownElement = errors.New("disjoint: unknown element")
)

const (
	// defaultCapacity is the initial number of cells.
	defaultCapacity = 8

	// rootRank0 is the cell value of a freshly created singleton.
	rootRank0 = -1
)

// Forest is a disjoint-set forest with union by rank and path compression.
type Forest[T comparable] struct {
	ids   *dictionary.ChainedHash[T, int] // element → permanent id
	cells []int                           // parent id, or -(rank+1) for a root
	sets  int                             // number of disjoint sets
}

// New returns an empty Forest.
func New[T comparable]() *Forest[T] {
	return &Forest[T]{
		ids:   dictionary.NewChainedHash[T, int](),
		cells: make([]int, 0, defaultCapacity),
	}
}

// MakeSet registers item as a new singleton set.
// Complexity: O(1) amortized.
func (f *Forest[T]) MakeSet(item T) error {
	if f.ids.ContainsKey(item) {
		return ErrDuplicateElement
	}
	id := len(f.cells)
	f.ids.Put(item, id)
	if len(f.cells) == cap(f.cells) {
		grown := make([]int, len(f.cells), 2*cap(f.cells))
		copy(grown, f.cells)
		f.cells = grown
	}
	f.cells = append(f.cells, rootRank0)
	f.sets++

	return nil
}

// FindSet returns the id of the root of item's set. Repeated calls return the
// same id until a Union involving the set changes its root.
// Complexity: amortized O(α(n)).
func (f *Forest[T]) FindSet(item T) (int, error) {
	id, ok := f.ids.Lookup(item)
	if !ok {
		return 0, ErrUnknownElement
	}

	return f.root(id), nil
}

// root finds the root of id and compresses the path behind it.
func (f *Forest[T]) root(id int) int {
	r := id
	for f.cells[r] >= 0 {
		r = f.cells[r]
	}
	for f.cells[id] >= 0 {
		next := f.cells[id]
		f.cells[id] = r
		id = next
	}

	return r
}

// rank decodes the rank stored in a root cell.
func (f *Forest[T]) rank(root int) int {
	return -f.cells[root] - 1
}

// Union merges the sets containing item1 and item2. It is a no-op when they
// already share a root.
//
// Steps:
//  1. Resolve both roots (ErrUnknownElement if either element is missing).
//  2. Attach the lower-rank root under the higher-rank root.
//  3. On a tie attach item1's root under item2's root and raise its rank.
//
// Complexity: amortized O(α(n)).
func (f *Forest[T]) Union(item1, item2 T) error {
	id1, ok1 := f.ids.Lookup(item1)
	id2, ok2 := f.ids.Lookup(item2)
	if !ok1 || !ok2 {
		return ErrUnknownElement
	}
	r1, r2 := f.root(id1), f.root(id2)
	if r1 == r2 {
		return nil
	}
	rank1, rank2 := f.rank(r1), f.rank(r2)
	switch {
	case rank1 > rank2:
		f.cells[r2] = r1
	case rank1 < rank2:
		f.cells[r1] = r2
	default:
		f.cells[r1] = r2
		f.cells[r2]-- // rank+1
	}
	f.sets--

	return nil
}

// Connected reports whether item1 and item2 belong to the same set.
func (f *Forest[T]) Connected(item1, item2 T) (bool, error) {
	r1, err := f.FindSet(item1)
	if err != nil {
		return false, err
	}
	r2, err := f.FindSet(item2)
	if err != nil {
		return false, err
	}

	return r1 == r2, nil
}

// Contains reports whether item has been registered.
func (f *Forest[T]) Contains(item T) bool {
	return f.ids.ContainsKey(item)
}

// Len returns the number of registered elements.
func (f *Forest[T]) Len() int {
	return len(f.cells)
}

// Count returns the number of disjoint sets.
func (f *Forest[T]) Count() int {
	return f.sets
}
