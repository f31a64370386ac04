package builder

import "github.com/finitestate/graphcover/core"

// Path builds a directed line graph on n vertices: 0 -> 1 -> ... -> n-1,
// every vertex final, initial state 0.
func Path(n int) (*core.Graph, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}

	g := core.NewGraph()
	for v := 0; v < n; v++ {
		g.AddVertex()
		g.AddFinalState(core.VertexID(v))
	}
	for v := 0; v < n-1; v++ {
		g.AddEdge(core.VertexID(v), core.VertexID(v+1))
	}
	g.SetInitialState(0)

	return g, nil
}
