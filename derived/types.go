package derived

import "github.com/finitestate/graphcover/core"

// Graph is a core.Graph built from layered copies of a base graph, where
// each layer corresponds to a subset of designated vertices already
// crossed. It satisfies core.PathGraph, so paths.ComputeExactLength and
// friends apply to it directly.
type Graph struct {
	*core.Graph

	// vertexOrigin maps a derived vertex ID back to the base graph vertex
	// it is a layered copy of.
	vertexOrigin []core.VertexID

	// edgeOrigin maps a derived edge ID back to the base graph edge that
	// produced it.
	edgeOrigin []core.EdgeID
}

// OriginOfVertex returns the base-graph vertex that the derived vertex v
// is a layered copy of.
func (g *Graph) OriginOfVertex(v core.VertexID) core.VertexID {
	return g.vertexOrigin[v]
}

// OriginOfEdge returns the base-graph edge that the derived edge e was
// lifted from.
func (g *Graph) OriginOfEdge(e core.EdgeID) core.EdgeID {
	return g.edgeOrigin[e]
}

var _ core.PathGraph = (*Graph)(nil)
