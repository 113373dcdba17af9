package graph

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the graph package.
var (
	// ErrInvalidInput indicates malformed construction input or a query on a
	// nil vertex.
	ErrInvalidInput = errors.New("graph: invalid input")

	// ErrNoPathExists indicates the end vertex cannot be reached from the
	// start, including when either of them was never declared.
	ErrNoPathExists = errors.New("graph: no path exists")

	// ErrDisconnectedGraph indicates no spanning tree covers every vertex.
	ErrDisconnectedGraph = errors.New("graph: graph is disconnected")
)

// Weight is the set of numeric types an edge weight may have.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge is an undirected connection between two vertices.
//
// Implementations must return a non-negative Weight. OtherVertex(known)
// returns the endpoint opposite to known; for a self-loop both endpoints are
// the same vertex.
type Edge[V comparable, W Weight] interface {
	Vertex1() V
	Vertex2() V
	Weight() W
	OtherVertex(known V) V
}

// Edger is the constraint on the edge type parameter of Graph: a comparable
// Edge, so edges can key dictionaries and sets.
type Edger[V comparable, W Weight] interface {
	comparable
	Edge[V, W]
}
