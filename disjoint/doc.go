// Package disjoint implements a disjoint-set forest, also known as a
// union-find structure, over arbitrary comparable elements.
//
// What & Why
//
//   - A Forest tracks a partition of elements into disjoint sets. FindSet names
//     the set an element belongs to by returning the integer id of its root;
//     Union merges two sets.
//   - Kruskal's minimum spanning tree uses it to reject edges whose endpoints
//     already share a component.
//
// Representation
//
//   - Each element gets a permanent id (0, 1, 2, … in MakeSet order), kept in a
//     dictionary.ChainedHash.
//   - A single int slice indexed by id stores either the parent id (a
//     non-negative cell) or, for a root, its rank encoded as -(rank+1). A fresh
//     element is a rank-0 root, i.e. -1.
//   - The slice doubles when full. Elements are never removed.
//
// Algorithms
//
//   - FindSet walks to the root, then relinks every node on the path directly to
//     the root (two-pass full path compression).
//   - Union attaches the lower-rank root under the higher-rank one. On equal
//     ranks the first argument's root goes under the second argument's root and
//     that root's rank grows by one, so the representative of a merged set may
//     differ from both previous roots.
//
// Together these give amortized O(α(n)) per operation.
//
// Errors:
//
//   - ErrDuplicateElement  MakeSet on an element that is already registered.
//   - ErrUnknownElement    FindSet / Union / Connected on an unregistered element.
//
// A Forest is not safe for concurrent use.
package disjoint
