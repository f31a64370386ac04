package builder_test

import (
	"testing"

	"github.com/finitestate/graphcover/builder"
	"github.com/finitestate/graphcover/core"
	"github.com/stretchr/testify/require"
)

func TestPathRejectsNonPositiveSize(t *testing.T) {
	_, err := builder.Path(0)
	require.ErrorIs(t, err, builder.ErrNonPositiveSize)
}

func TestPathShape(t *testing.T) {
	g, err := builder.Path(4)
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, core.VertexID(0), g.InitialState())
	require.Len(t, g.OutEdges(3), 0)
}

func TestCycleShape(t *testing.T) {
	g, err := builder.Cycle(3)
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.True(t, g.IsConnected())
	require.Equal(t, 2, g.Eccentricity())
}

func TestCycleRejectsNonPositiveSize(t *testing.T) {
	_, err := builder.Cycle(-1)
	require.ErrorIs(t, err, builder.ErrNonPositiveSize)
}
