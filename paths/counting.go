package paths

import (
	"github.com/finitestate/graphcover/core"
	"github.com/finitestate/graphcover/gmatrix"
)

// ComputeExactLength returns P where P[v,k] is the number of walks of
// length exactly k from v ending in a final state.
//
// Base case: P[v,0] = 1 iff v is final, else 0. Recurrence:
// P[v,k] = sum over out-edges (v->w) of P[w,k-1], with parallel edges
// contributing once each. The result has shape (n, length+1).
//
// Complexity: O(length * (n + m)).
func ComputeExactLength(g core.PathGraph, length int) *gmatrix.Dense {
	n := g.VertexCount()

	paths, err := gmatrix.NewDense(n, length+1)
	if err != nil {
		panic(err) // NewDense rejects a graph with no vertices or a negative length
	}

	for v := 0; v < n; v++ {
		if g.IsFinalState(core.VertexID(v)) {
			paths.Set(v, 0, 1)
		}
	}

	for k := 1; k <= length; k++ {
		for v := 0; v < n; v++ {
			var count float64
			for _, e := range g.OutEdges(core.VertexID(v)) {
				count += paths.At(int(g.Target(e)), k-1)
			}
			paths.Set(v, k, count)
		}
	}

	return paths
}

// ComputeMaxLength returns the row-wise prefix sum of ComputeExactLength
// along the length axis, so column k holds the count of walks of length
// <= k from each vertex ending in a final state.
//
// Complexity: O(n * length) beyond ComputeExactLength's cost.
func ComputeMaxLength(g core.PathGraph, length int) *gmatrix.Dense {
	exact := ComputeExactLength(g, length)
	n := exact.Rows()

	for k := 1; k < exact.Cols(); k++ {
		for v := 0; v < n; v++ {
			exact.Set(v, k, exact.At(v, k)+exact.At(v, k-1))
		}
	}

	return exact
}

// CountMaxLengthFromInitial returns the number of walks of length <= length
// from g's initial state ending in a final state: the sum of the initial
// state's row across every column of the exact-length table.
//
// Complexity: O(length * (n + m)).
func CountMaxLengthFromInitial(g core.PathGraph, length int) float64 {
	exact := ComputeExactLength(g, length)
	init := int(g.InitialState())

	var count float64
	for k := 0; k <= length; k++ {
		count += exact.At(init, k)
	}

	return count
}
