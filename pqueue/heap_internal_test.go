package pqueue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariant verifies that every parent is <= each of its children.
func checkInvariant[T any](t *testing.T, h *Heap[T]) {
	t.Helper()
	for i := 1; i < h.size; i++ {
		p := (i - 1) / arity
		require.LessOrEqual(t, h.cmp(h.items[p], h.items[i]), 0, "parent %d > child %d", p, i)
	}
}

func TestHeap_InvariantHolds(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	h := New[int]()
	for i := 0; i < 500; i++ {
		require.NoError(t, h.Insert(r.Intn(1000)))
		checkInvariant(t, h)
	}
	for i := 0; i < 250; i++ {
		_, err := h.RemoveMin()
		require.NoError(t, err)
		checkInvariant(t, h)
	}
	// vacated slots are cleared
	for i := h.size; i < len(h.items); i++ {
		require.Zero(t, h.items[i])
	}
}
