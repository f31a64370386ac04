package lpsolve_test

import (
	"testing"

	"github.com/finitestate/graphcover/gmatrix"
	"github.com/finitestate/graphcover/lpsolve"
	"github.com/finitestate/graphcover/rng"
	"github.com/stretchr/testify/require"
)

func TestComputePiOnIdentityIsUniform(t *testing.T) {
	n := 3
	m, err := gmatrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	eng := rng.NewEngineFromSeed(1)
	pi := lpsolve.ComputePi(m, eng)

	require.Len(t, pi, n)
	var sum float64
	for _, v := range pi {
		sum += v
		require.InDelta(t, 1.0/3, v, 1e-6)
	}
	require.InDelta(t, 1.0, sum, 1e-6)
}

func TestComputePiOnSingleVertex(t *testing.T) {
	m, err := gmatrix.NewDense(1, 1)
	require.NoError(t, err)
	m.Set(0, 0, 5)

	eng := rng.NewEngineFromSeed(2)
	pi := lpsolve.ComputePi(m, eng)
	require.Len(t, pi, 1)
	require.InDelta(t, 1.0, pi[0], 1e-6)
}
