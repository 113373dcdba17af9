// Package pqueue provides a generic min-priority queue backed by a 4-ary heap.
//
// What & Why
//
//   - A d-ary heap stores a complete d-ary tree in a slice: the children of
//     index i live at d*i+1 .. d*i+d and its parent at (i-1)/d.
//   - With d = 4 the tree is half as tall as a binary heap, so Insert
//     (sift-up) does fewer swaps, at the cost of up to 4 comparisons per level
//     during RemoveMin (sift-down). Shortest-path workloads insert far more
//     often than they remove, which is where the trade pays off.
//
// API
//
//   - New[T cmp.Ordered]()        natural ordering
//   - NewFunc[T](cmp)             three-way comparator for any element type
//   - Insert / PeekMin / RemoveMin / Size
//
// Capacity starts at 20 and doubles whenever the heap is full; it never
// shrinks. There is no arbitrary deletion and no decrease-key: callers that
// need to lower a priority insert a fresh, better record and discard the stale
// one when it surfaces (lazy decrease-key).
//
// Errors:
//
//   - ErrInvalidInput   Insert of a nil-equivalent item.
//   - ErrEmptyContainer PeekMin / RemoveMin on an empty queue.
//
// A Heap is not safe for concurrent use.
package pqueue
