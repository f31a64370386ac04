package gmatrix_test

import (
	"testing"

	"github.com/finitestate/graphcover/gmatrix"
	"github.com/stretchr/testify/require"
)

func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := gmatrix.NewDense(0, 5)
	require.ErrorIs(t, err, gmatrix.ErrInvalidDimensions)

	_, err = gmatrix.NewDense(5, 0)
	require.ErrorIs(t, err, gmatrix.ErrInvalidDimensions)
}

func TestSetGetRoundTrip(t *testing.T) {
	m, err := gmatrix.NewDense(2, 3)
	require.NoError(t, err)

	m.Set(1, 2, 42.5)
	require.Equal(t, 42.5, m.At(1, 2))
	require.Equal(t, 0.0, m.At(0, 0))
}

func TestTryAtOutOfRange(t *testing.T) {
	m, err := gmatrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.TryAt(-1, 0)
	require.ErrorIs(t, err, gmatrix.ErrOutOfRange)

	_, err = m.TryAt(0, 2)
	require.ErrorIs(t, err, gmatrix.ErrOutOfRange)
}

func TestColumnMajorStorageOrder(t *testing.T) {
	// Column-major: writing down a column should not disturb other columns.
	m, err := gmatrix.NewDense(3, 2)
	require.NoError(t, err)

	for r := 0; r < 3; r++ {
		m.Set(r, 0, float64(r+1))
	}
	for r := 0; r < 3; r++ {
		require.Equal(t, float64(r+1), m.At(r, 0))
		require.Equal(t, 0.0, m.At(r, 1))
	}
}

func TestAddAtAccumulates(t *testing.T) {
	m, err := gmatrix.NewDense(2, 2)
	require.NoError(t, err)

	m.AddAt(0, 0, 1)
	m.AddAt(0, 0, 1)
	require.Equal(t, 2.0, m.At(0, 0))
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := gmatrix.NewDense(1, 1)
	require.NoError(t, err)
	m.Set(0, 0, 7)

	cp := m.Clone()
	cp.Set(0, 0, 9)
	require.Equal(t, 7.0, m.At(0, 0))
	require.Equal(t, 9.0, cp.At(0, 0))
}

func TestColumnCopy(t *testing.T) {
	m, err := gmatrix.NewDense(2, 2)
	require.NoError(t, err)
	m.Set(0, 1, 3)
	m.Set(1, 1, 4)

	col := m.Column(1)
	require.Equal(t, []float64{3, 4}, col)

	col[0] = 99
	require.Equal(t, 3.0, m.At(0, 1))
}
