package alpha

import (
	"github.com/finitestate/graphcover/core"
	"github.com/finitestate/graphcover/derived"
	"github.com/finitestate/graphcover/gmatrix"
	"github.com/finitestate/graphcover/paths"
)

// ExactAlphaMatrix computes the n x n joint crossing-count matrix: entry
// (i, j) is the number of accepted walks of length <= maxLength that cross
// both vertex i and vertex j (i == j is simply "crosses i", read off the
// crossing-one derived graph).
//
// The off-diagonal construction is symmetric in its two arguments by
// construction (derived.CrossingTwo treats x and y identically up to
// layer-bit naming), so A[i][j] == A[j][i] exactly, not merely
// approximately.
//
// Complexity: O(n^2 * maxLength * (n + m)), since every cell requires its
// own derived graph and DP table.
func ExactAlphaMatrix(base *core.Graph, maxLength int) *gmatrix.Dense {
	n := base.VertexCount()
	a, err := gmatrix.NewDense(n, n)
	if err != nil {
		panic(err)
	}

	for i := 0; i < n; i++ {
		d := derived.CrossingOne(base, core.VertexID(i))
		count := paths.CountMaxLengthFromInitial(d, maxLength)
		a.Set(i, i, count)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := derived.CrossingTwo(base, core.VertexID(i), core.VertexID(j))
			count := paths.CountMaxLengthFromInitial(d, maxLength)
			a.Set(i, j, count)
			a.Set(j, i, count)
		}
	}

	return a
}
