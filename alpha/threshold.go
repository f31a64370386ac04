package alpha

import (
	"github.com/finitestate/graphcover/core"
	"github.com/finitestate/graphcover/gmatrix"
	"github.com/finitestate/graphcover/rng"
)

// ApproxAlphaMatrixWithThreshold behaves as ApproxAlphaMatrix, except any
// column j whose diagonal estimate a[j][j] falls below threshold is zeroed
// out entirely: a vertex so rarely crossed that its own estimate is noise
// cannot usefully inform a joint estimate either.
func ApproxAlphaMatrixWithThreshold(base *core.Graph, maxLength, samples int, threshold float64, eng *rng.Engine) *gmatrix.Dense {
	a := ApproxAlphaMatrix(base, maxLength, samples, eng)
	n := a.Rows()

	for j := 0; j < n; j++ {
		if a.At(j, j) >= threshold {
			continue
		}
		for i := 0; i < n; i++ {
			a.Set(i, j, 0)
		}
	}

	return a
}
