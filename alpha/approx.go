package alpha

import (
	"github.com/finitestate/graphcover/core"
	"github.com/finitestate/graphcover/gmatrix"
	"github.com/finitestate/graphcover/rng"
	"github.com/finitestate/graphcover/sampling"
)

// ApproxAlphaMatrix estimates the joint crossing-count matrix by drawing
// samples weighted walks of length <= maxLength and, for each walk,
// counting every vertex occurrence rather than deduplicating to a single
// "crossed or not" bit: a vertex visited twice contributes twice to every
// pair it participates in. This deliberately differs from the exact
// construction's 0/1 crossing semantics, so ApproxAlphaMatrix estimates an
// expected occurrence-product, not a crossing probability. Entries are
// averages over the samples, not walk counts, so they are not on
// ExactAlphaMatrix's scale even when no walk revisits a vertex.
//
// Complexity: O(samples * (maxLength + n^2)).
func ApproxAlphaMatrix(base *core.Graph, maxLength, samples int, eng *rng.Engine) *gmatrix.Dense {
	n := base.VertexCount()
	a, err := gmatrix.NewDense(n, n)
	if err != nil {
		panic(err)
	}

	occ := make([]float64, n)
	for s := 0; s < samples; s++ {
		walk := sampling.WeightedPath(base, maxLength, eng)

		for i := range occ {
			occ[i] = 0
		}
		for _, v := range walk {
			occ[v]++
		}

		for i := 0; i < n; i++ {
			if occ[i] == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				if occ[j] == 0 {
					continue
				}
				a.AddAt(i, j, occ[i]*occ[j])
			}
		}
	}

	if samples > 0 {
		scale := 1.0 / float64(samples)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				a.Set(i, j, a.At(i, j)*scale)
			}
		}
	}

	return a
}
