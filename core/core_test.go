package core_test

import (
	"testing"

	"github.com/finitestate/graphcover/core"
	"github.com/stretchr/testify/require"
)

// lineGraph builds 0->1->2->3, all vertices final, initial = 0.
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

// triangleCycle builds 0->1->2->0, all vertices final, initial = 0.
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

func TestAddVertexAddEdge(t *testing.T) {
	g := core.NewGraph()
	require.Equal(t, 0, g.VertexCount())

	a := g.AddVertex()
	b := g.AddVertex()
	require.Equal(t, core.VertexID(0), a)
	require.Equal(t, core.VertexID(1), b)
	require.Equal(t, 2, g.VertexCount())

	e := g.AddEdge(a, b)
	require.Equal(t, core.EdgeID(0), e)
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, a, g.Source(e))
	require.Equal(t, b, g.Target(e))
	require.Equal(t, []core.EdgeID{e}, g.OutEdges(a))
	require.Empty(t, g.OutEdges(b))
}

func TestParallelEdgesPreserveMultiplicity(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()

	e1 := g.AddEdge(a, b)
	e2 := g.AddEdge(a, b)
	require.NotEqual(t, e1, e2)
	require.Equal(t, []core.EdgeID{e1, e2}, g.OutEdges(a))
}

func TestInitialAndFinalStates(t *testing.T) {
	g := core.NewGraph()
	require.Equal(t, core.InvalidVertexID, g.InitialState())

	a := g.AddVertex()
	g.SetInitialState(a)
	require.True(t, g.IsInitialState(a))

	g.AddFinalState(a)
	require.True(t, g.IsFinalState(a))
	require.Equal(t, []core.VertexID{a}, g.FinalStates())
}

func TestEmptyGraphIsConnectedWithZeroEccentricity(t *testing.T) {
	g := core.NewGraph()
	require.True(t, g.IsConnected())
	require.Equal(t, 0, g.Eccentricity())
}

func TestSingleVertexNoEdges(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex()
	g.SetInitialState(a)
	g.AddFinalState(a)

	require.True(t, g.IsConnected())
	require.Equal(t, 0, g.Eccentricity())
}

func TestIsConnectedDetectsUnreachableVertex(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	_ = b // unreachable from a
	g.SetInitialState(a)

	require.False(t, g.IsConnected())
}

func TestScenarioALineGraph(t *testing.T) {
	g := lineGraph()
	require.True(t, g.IsConnected())
	require.Equal(t, 3, g.Eccentricity())
}

func TestScenarioBTriangleCycle(t *testing.T) {
	g := triangleCycle()
	require.True(t, g.IsConnected())
	require.Equal(t, 2, g.Eccentricity())
}

func TestIsConnectedDefaultsToVertexZeroWithoutInitialState(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex()
	g.AddVertex()
	g.AddEdge(0, 1)

	require.True(t, g.IsConnected())
}
