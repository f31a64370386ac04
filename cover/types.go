package cover

import "github.com/finitestate/graphcover/rng"

// LengthFactor multiplied by a graph's eccentricity gives the walk length
// budget the cmd programs pass to the cover loop functions as maxLength.
const LengthFactor = 2

// CoverTries is the attempts count the cmd programs pass to CoverMultiple
// and CoverMultipleRandom; each attempt itself loops until full coverage,
// however many iterations that takes.
const CoverTries = 100

// Thresholds are the coverage fractions whose first-crossing iteration
// CoverOnce and CoverOnceRandom record.
var Thresholds = []float64{0.5, 0.9, 0.95, 0.99, 1.0}

// Distribution samples a vertex to re-inject a cover attempt at.
type Distribution interface {
	Sample(eng *rng.Engine) int
}

// Result is the outcome of a single cover attempt: for each threshold in
// Thresholds, the 1-based iteration index at which coverage first reached
// it.
type Result struct {
	ThresholdIteration map[float64]int
	TotalIterations    int
	Covered            int
	Total              int
}

func newResult(total int) Result {
	hit := make(map[float64]int, len(Thresholds))
	for _, thr := range Thresholds {
		hit[thr] = -1
	}
	return Result{ThresholdIteration: hit, Total: total}
}
