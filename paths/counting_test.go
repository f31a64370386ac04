package paths_test

import (
	"testing"

	"github.com/finitestate/graphcover/core"
	"github.com/finitestate/graphcover/paths"
	"github.com/stretchr/testify/require"
)

func lineGraph() *core.Graph {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddVertex()
		g.AddFinalState(core.VertexID(i))
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.SetInitialState(0)

	return g
}

func triangleCycle() *core.Graph {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddVertex()
		g.AddFinalState(core.VertexID(i))
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.SetInitialState(0)

	return g
}

func TestScenarioALineGraphExactLength6(t *testing.T) {
	g := lineGraph()
	exact := paths.ComputeExactLength(g, 6)
	require.Equal(t, 0.0, exact.At(0, 6))
}

func TestScenarioAMaxLengthFromInitialState(t *testing.T) {
	g := lineGraph()
	got := paths.CountMaxLengthFromInitial(g, 6)
	require.Equal(t, 4.0, got)
}

func TestScenarioBTriangleCycleExactLength(t *testing.T) {
	g := triangleCycle()
	exact := paths.ComputeExactLength(g, 6)
	for _, k := range []int{0, 3, 6} {
		require.Equal(t, 1.0, exact.At(0, k))
	}
}

func TestScenarioBMaxLengthFromInitialState(t *testing.T) {
	g := triangleCycle()
	got := paths.CountMaxLengthFromInitial(g, 4)
	require.Equal(t, 5.0, got)
}

func TestExactBaseCaseFinalAndNonFinal(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	g.AddEdge(a, b)
	g.AddFinalState(b)
	g.SetInitialState(a)

	exact := paths.ComputeExactLength(g, 0)
	require.Equal(t, 0.0, exact.At(int(a), 0))
	require.Equal(t, 1.0, exact.At(int(b), 0))
}

func TestSelfLoopGrowsLinearly(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex()
	g.AddEdge(a, a)
	g.AddFinalState(a)
	g.SetInitialState(a)

	exact := paths.ComputeExactLength(g, 3)
	for k := 0; k <= 3; k++ {
		require.Equal(t, 1.0, exact.At(int(a), k))
	}
}

func TestMaxLengthIsPrefixSumOfExact(t *testing.T) {
	g := triangleCycle()
	exact := paths.ComputeExactLength(g, 5)
	maxLen := paths.ComputeMaxLength(g, 5)

	for v := 0; v < g.VertexCount(); v++ {
		var running float64
		for k := 0; k <= 5; k++ {
			running += exact.At(v, k)
			require.Equal(t, running, maxLen.At(v, k))
		}
	}
}
