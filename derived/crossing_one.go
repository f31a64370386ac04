package derived

import "github.com/finitestate/graphcover/core"

// CrossingOne builds a two-layer derived graph that forces every non-trivial
// walk accepted by it to have passed through x.
//
// Layer 0 holds vertices not yet crossed x; layer 1 holds vertices crossed
// x. An edge whose source is x lifts its layer-0 copy into layer 1 (departing
// x is what "crossing" means); every other edge stays within its layer.
// The initial state is always the layer-0 copy of the base initial state.
// Final states are the layer-1 copies of every base final state, plus the
// layer-0 copy of x itself if x is a base final state — a walk that has
// reached x but not yet departed it still counts as having touched x.
//
// Complexity: O(n + m) vertices and edges in the result, twice the base
// graph's size.
func CrossingOne(base *core.Graph, x core.VertexID) *Graph {
	n := base.VertexCount()
	g := core.NewGraph()
	vertexOrigin := make([]core.VertexID, 0, 2*n)

	for layer := 0; layer < 2; layer++ {
		for v := 0; v < n; v++ {
			g.AddVertex()
			vertexOrigin = append(vertexOrigin, core.VertexID(v))
		}
	}

	layerOffset := func(layer int, v core.VertexID) core.VertexID {
		return core.VertexID(layer*n) + v
	}

	edgeOrigin := make([]core.EdgeID, 0, 2*base.EdgeCount())
	for _, e := range base.Edges() {
		src, dst := base.Source(e), base.Target(e)

		// Layer 0 copy: crosses into layer 1 upon departing x.
		if src == x {
			g.AddEdge(layerOffset(0, src), layerOffset(1, dst))
		} else {
			g.AddEdge(layerOffset(0, src), layerOffset(0, dst))
		}
		edgeOrigin = append(edgeOrigin, e)

		// Layer 1 copy: already crossed, stays in layer 1.
		g.AddEdge(layerOffset(1, src), layerOffset(1, dst))
		edgeOrigin = append(edgeOrigin, e)
	}

	g.SetInitialState(layerOffset(0, base.InitialState()))

	if base.IsFinalState(x) {
		g.AddFinalState(layerOffset(0, x))
	}
	for _, f := range base.FinalStates() {
		g.AddFinalState(layerOffset(1, f))
	}

	return &Graph{Graph: g, vertexOrigin: vertexOrigin, edgeOrigin: edgeOrigin}
}
