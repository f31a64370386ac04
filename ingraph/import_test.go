package ingraph_test

import (
	"strings"
	"testing"

	"github.com/finitestate/graphcover/core"
	"github.com/finitestate/graphcover/ingraph"
	"github.com/stretchr/testify/require"
)

func TestImportLineGraph(t *testing.T) {
	input := "4 0\n0 1\n1 2\n2 3\n"
	g, err := ingraph.Import(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, core.VertexID(0), g.InitialState())
	for v := 0; v < 4; v++ {
		require.True(t, g.IsFinalState(core.VertexID(v)))
	}
}

func TestImportGraphWithNoEdges(t *testing.T) {
	g, err := ingraph.Import(strings.NewReader("1 0\n"))
	require.NoError(t, err)
	require.Equal(t, 1, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
}

func TestImportRejectsOutOfRangeInitialState(t *testing.T) {
	_, err := ingraph.Import(strings.NewReader("2 5\n"))
	require.ErrorIs(t, err, ingraph.ErrMalformedInput)
}

func TestImportRejectsOutOfRangeEdge(t *testing.T) {
	_, err := ingraph.Import(strings.NewReader("2 0\n0 7\n"))
	require.ErrorIs(t, err, ingraph.ErrMalformedInput)
}

func TestImportRejectsNonIntegerToken(t *testing.T) {
	_, err := ingraph.Import(strings.NewReader("abc 0\n"))
	require.ErrorIs(t, err, ingraph.ErrMalformedInput)
}
