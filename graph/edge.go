package graph

import "fmt"

// WeightedEdge is the stock Edge implementation. Use it through a pointer so
// every edge has its own identity.
type WeightedEdge[V comparable, W Weight] struct {
	v1, v2 V
	weight W
}

// NewEdge returns an edge between v1 and v2 with the given weight.
// Validation happens when the edge is handed to New.
func NewEdge[V comparable, W Weight](v1, v2 V, weight W) *WeightedEdge[V, W] {
	return &WeightedEdge[V, W]{v1: v1, v2: v2, weight: weight}
}

// Vertex1 returns the first endpoint.
func (e *WeightedEdge[V, W]) Vertex1() V { return e.v1 }

// Vertex2 returns the second endpoint.
func (e *WeightedEdge[V, W]) Vertex2() V { return e.v2 }

// Weight returns the edge weight.
func (e *WeightedEdge[V, W]) Weight() W { return e.weight }

// OtherVertex returns the endpoint opposite to known. If known is not an
// endpoint the zero V is returned.
func (e *WeightedEdge[V, W]) OtherVertex(known V) V {
	switch known {
	case e.v1:
		return e.v2
	case e.v2:
		return e.v1
	}
	var zero V

	return zero
}

// String renders the edge as "v1-v2(weight)".
func (e *WeightedEdge[V, W]) String() string {
	return fmt.Sprintf("%v-%v(%v)", e.v1, e.v2, e.weight)
}
