package builder

import "github.com/finitestate/graphcover/core"

// Cycle builds a directed cycle on n vertices: 0 -> 1 -> ... -> n-1 -> 0,
// every vertex final, initial state 0.
func Cycle(n int) (*core.Graph, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}

	g := core.NewGraph()
	for v := 0; v < n; v++ {
		g.AddVertex()
		g.AddFinalState(core.VertexID(v))
	}
	for v := 0; v < n; v++ {
		g.AddEdge(core.VertexID(v), core.VertexID((v+1)%n))
	}
	g.SetInitialState(0)

	return g, nil
}
