package derived

import "github.com/finitestate/graphcover/core"

// CrossingTwo builds a four-layer derived graph that forces every
// non-trivial walk accepted by it to have passed through both x and y. x
// and y must be distinct vertices of base.
//
// Layers are indexed 0..3 as a two-bit mask: bit 0 set means x has been
// crossed, bit 1 set means y has been crossed. An edge whose source is x
// lifts any layer without bit 0 set into the same layer with bit 0 set; an
// edge whose source is y does the same for bit 1. The initial state is
// always the layer-0 copy of the base initial state. Final states are the
// layer-3 (both crossed) copies of every base final state, plus the copy
// of x in layer 2 (only y crossed) if x is a base final state and the copy
// of y in layer 1 (only x crossed) if y is, mirroring CrossingOne's
// exception for a walk that has reached but not yet departed the
// distinguished vertex.
//
// Complexity: O(n + m) vertices and edges in the result, four times the
// base graph's size.
func CrossingTwo(base *core.Graph, x, y core.VertexID) *Graph {
	n := base.VertexCount()
	g := core.NewGraph()
	vertexOrigin := make([]core.VertexID, 0, 4*n)

	for layer := 0; layer < 4; layer++ {
		for v := 0; v < n; v++ {
			g.AddVertex()
			vertexOrigin = append(vertexOrigin, core.VertexID(v))
		}
	}

	layerOffset := func(layer int, v core.VertexID) core.VertexID {
		return core.VertexID(layer*n) + v
	}
	hasX := func(layer int) bool { return layer&1 != 0 }
	hasY := func(layer int) bool { return layer&2 != 0 }

	edgeOrigin := make([]core.EdgeID, 0, 4*base.EdgeCount())
	for layer := 0; layer < 4; layer++ {
		for _, e := range base.Edges() {
			src, dst := base.Source(e), base.Target(e)

			target := layer
			if src == x && !hasX(layer) {
				target |= 1
			}
			if src == y && !hasY(layer) {
				target |= 2
			}

			g.AddEdge(layerOffset(layer, src), layerOffset(target, dst))
			edgeOrigin = append(edgeOrigin, e)
		}
	}

	g.SetInitialState(layerOffset(0, base.InitialState()))

	if base.IsFinalState(x) {
		g.AddFinalState(layerOffset(2, x)) // y crossed, x reached
	}
	if base.IsFinalState(y) {
		g.AddFinalState(layerOffset(1, y)) // x crossed, y reached
	}
	for _, f := range base.FinalStates() {
		g.AddFinalState(layerOffset(3, f))
	}

	return &Graph{Graph: g, vertexOrigin: vertexOrigin, edgeOrigin: edgeOrigin}
}
