// Package graph provides an immutable, undirected, weighted graph with two
// queries: a minimum spanning tree (Kruskal) and a single-pair shortest path
// (Dijkstra with lazy decrease-key).
//
// What & Why
//
//   - Vertices are any comparable type chosen by the caller.
//   - Edges are any comparable type implementing Edge[V, W]. Pointer edges
//     such as *WeightedEdge give identity semantics, so parallel edges between
//     the same pair of vertices remain distinct.
//   - Weights are any integer or floating type (Weight) and must be
//     non-negative and finite.
//   - The graph is built once by New or NewFromSets and never mutated after.
//
// Construction validates the whole input and reports every problem at once:
//
//   - nil vertices, duplicated vertices,
//   - nil edges, edges touching undeclared vertices, negative, NaN or infinite weights.
//
// Each problem wraps ErrInvalidInput, so errors.Is(err, ErrInvalidInput)
// holds for the aggregate.
//
// Algorithms
//
// MinimumSpanningTree:
//  1. Order edges by (weight, construction position) through sorter.TopKSort.
//  2. Seed a disjoint.Forest with every vertex.
//  3. Accept an edge only if its endpoints lie in different sets, then Union.
//  4. Stop after |V|-1 edges; running out first means ErrDisconnectedGraph.
//
// ShortestPathBetween:
//  1. Queue one cost record per vertex: 0 for the start, unreached otherwise.
//  2. Pop the cheapest record; skip it if its vertex is already finalized.
//  3. Relax incident edges. An improvement inserts a fresh record instead of
//     decreasing a key; the old record becomes a stale duplicate.
//  4. Rebuild the path by walking predecessor edges back from the end.
//
// Complexity:
//
//   - MinimumSpanningTree: O(E log E) time, O(V + E) space.
//   - ShortestPathBetween: O((V + E) log (V + E)) time, O(V + E) space.
//
// Errors:
//
//   - ErrInvalidInput      malformed construction input, nil query vertices.
//   - ErrNoPathExists      end is unreachable from start, or either is undeclared.
//   - ErrDisconnectedGraph no spanning tree covers every vertex.
//
// A Graph is safe for concurrent reads because nothing mutates it after
// construction; each query allocates its own working state.
package graph
