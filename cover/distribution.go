package cover

import (
	"github.com/finitestate/graphcover/alpha"
	"github.com/finitestate/graphcover/core"
	"github.com/finitestate/graphcover/gmatrix"
	"github.com/finitestate/graphcover/lpsolve"
	"github.com/finitestate/graphcover/rng"
)

// lpDistribution samples a vertex proportionally to the maximin mixture
// pi computed over the graph's alpha matrix, so re-injection favors the
// vertex hardest to starve of coverage.
type lpDistribution struct {
	pi []float64
}

// NewLPDistribution computes the maximin distribution over base's exact
// alpha matrix for the given walk length, normalized by its diagonal, and
// wraps it as a Distribution.
func NewLPDistribution(base *core.Graph, maxLength int, eng *rng.Engine) Distribution {
	a := alpha.ExactAlphaMatrix(base, maxLength)
	pi := lpsolve.ComputePi(alpha.NormalizeByDiagonal(a), eng)
	return &lpDistribution{pi: pi}
}

func (d *lpDistribution) Sample(eng *rng.Engine) int {
	return sampleFromWeights(d.pi, eng)
}

// NewDistributionFromAlpha normalizes a caller-supplied alpha matrix (exact
// or Monte Carlo) by its diagonal, computes the maximin mixture over the
// result and wraps it as a Distribution, for callers that need control
// over how the alpha matrix was built.
func NewDistributionFromAlpha(a *gmatrix.Dense, eng *rng.Engine) Distribution {
	pi := lpsolve.ComputePi(alpha.NormalizeByDiagonal(a), eng)
	return &lpDistribution{pi: pi}
}

// uniformDistribution samples a vertex uniformly at random.
type uniformDistribution struct {
	n int
}

// NewUniformDistribution wraps a uniform choice over n vertices as a
// Distribution.
func NewUniformDistribution(n int) Distribution {
	return &uniformDistribution{n: n}
}

func (d *uniformDistribution) Sample(eng *rng.Engine) int {
	return eng.Intn(d.n)
}

func sampleFromWeights(weights []float64, eng *rng.Engine) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return eng.Intn(len(weights))
	}

	target := eng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if target < cum {
			return i
		}
	}

	return len(weights) - 1
}
