package disjoint_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/disjoint"
)

// makeForest registers items in order and fails the test on any error.
func makeForest[T comparable](t *testing.T, items ...T) *disjoint.Forest[T] {
	t.Helper()
	f := disjoint.New[T]()
	for _, it := range items {
		require.NoError(t, f.MakeSet(it))
	}

	return f
}

// roots returns FindSet for every item.
func roots[T comparable](t *testing.T, f *disjoint.Forest[T], items ...T) []int {
	t.Helper()
	out := make([]int, len(items))
	for i, it := range items {
		r, err := f.FindSet(it)
		require.NoError(t, err)
		out[i] = r
	}

	return out
}

func TestForest_SimpleIDs(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	f := makeForest(t, items...)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, roots(t, f, items...))
	assert.Equal(t, 5, f.Len())
	assert.Equal(t, 5, f.Count())
}

func TestForest_DuplicateMakeSet(t *testing.T) {
	f := makeForest(t, "a")
	assert.ErrorIs(t, f.MakeSet("a"), disjoint.ErrDuplicateElement)
	assert.Equal(t, 1, f.Len())
}

func TestForest_UnknownElement(t *testing.T) {
	f := makeForest(t, "a", "b")

	_, err := f.FindSet("z")
	assert.ErrorIs(t, err, disjoint.ErrUnknownElement)
	assert.ErrorIs(t, f.Union("a", "z"), disjoint.ErrUnknownElement)
	assert.ErrorIs(t, f.Union("z", "a"), disjoint.ErrUnknownElement)
	_, err = f.Connected("z", "a")
	assert.ErrorIs(t, err, disjoint.ErrUnknownElement)
	assert.False(t, f.Contains("z"))
	assert.True(t, f.Contains("a"))
}

// Two rank-1 trees of unequal size merge on a tie: the first argument's
// root goes under the second's.
func TestForest_UnionUnequalTrees(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	f := makeForest(t, items...)

	require.NoError(t, f.Union("a", "b")) // a under b, rank(b)=1
	require.NoError(t, f.Union("c", "b")) // c (rank 0) under b
	require.NoError(t, f.Union("d", "e")) // d under e, rank(e)=1

	id, err := f.FindSet("a")
	require.NoError(t, err)
	assert.Equal(t, []int{id, id, id, 4, 4}, roots(t, f, items...))
	assert.Equal(t, 1, id)
	assert.Equal(t, 2, f.Count())

	require.NoError(t, f.Union("a", "e")) // tie at rank 1: b goes under e
	assert.Equal(t, []int{4, 4, 4, 4, 4}, roots(t, f, items...))
	assert.Equal(t, 1, f.Count())
}

func TestForest_UnionByRank(t *testing.T) {
	f := makeForest(t, 0, 1, 2)
	require.NoError(t, f.Union(0, 1)) // root 1, rank 1
	require.NoError(t, f.Union(1, 2)) // rank(1)=1 > rank(2)=0, so 2 under 1

	assert.Equal(t, []int{1, 1, 1}, roots(t, f, 0, 1, 2))
}

func TestForest_UnionSameTree(t *testing.T) {
	f := makeForest(t, "a", "b", "c")
	require.NoError(t, f.Union("a", "b"))
	before := roots(t, f, "a", "b", "c")

	require.NoError(t, f.Union("b", "a"))
	require.NoError(t, f.Union("a", "a"))
	assert.Equal(t, before, roots(t, f, "a", "b", "c"))
	assert.Equal(t, 2, f.Count())
}

func TestForest_Connected(t *testing.T) {
	f := makeForest(t, "a", "b", "c")
	require.NoError(t, f.Union("a", "c"))

	ok, err := f.Connected("a", "c")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.Connected("a", "b")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestForest_Large chains 1000 elements through repeated unions and checks
// that growth past the initial capacity keeps every element reachable.
func TestForest_Large(t *testing.T) {
	const n = 1000
	f := disjoint.New[int]()
	for i := 0; i < n; i++ {
		require.NoError(t, f.MakeSet(i))
	}
	assert.Equal(t, n, f.Len())

	for i := 0; i < n; i += 2 {
		require.NoError(t, f.Union(i, i+1))
	}
	assert.Equal(t, n/2, f.Count())
	for i := 0; i < n; i += 2 {
		ok, err := f.Connected(i, i+1)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	for i := 2; i < n; i += 2 {
		require.NoError(t, f.Union(0, i))
	}
	assert.Equal(t, 1, f.Count())
	want, err := f.FindSet(0)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		got, err := f.FindSet(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "element %d", i)
	}
}

// Zero values and pointers are ordinary elements.
func TestForest_ZeroAndPointerElements(t *testing.T) {
	f := makeForest(t, 0, 7)
	require.NoError(t, f.Union(0, 7))
	ok, err := f.Connected(7, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	type node struct{ name string }
	x, y := &node{"x"}, &node{"x"}
	p := makeForest(t, x, y)
	assert.Equal(t, 2, p.Count())
}

func ExampleForest() {
	f := disjoint.New[string]()
	for _, c := range []string{"kyiv", "lviv", "odesa", "kharkiv"} {
		_ = f.MakeSet(c)
	}
	_ = f.Union("kyiv", "lviv")
	_ = f.Union("odesa", "kharkiv")

	same, _ := f.Connected("kyiv", "lviv")
	cross, _ := f.Connected("lviv", "odesa")
	fmt.Println(same, cross, f.Count())
	// Output: true false 2
}

// BenchmarkForest_UnionFind unions 10k elements into one set and queries each.
func BenchmarkForest_UnionFind(b *testing.B) {
	const n = 10_000
	for i := 0; i < b.N; i++ {
		f := disjoint.New[int]()
		for v := 0; v < n; v++ {
			_ = f.MakeSet(v)
		}
		for v := 1; v < n; v++ {
			_ = f.Union(v-1, v)
		}
		for v := 0; v < n; v++ {
			_, _ = f.FindSet(v)
		}
	}
}
