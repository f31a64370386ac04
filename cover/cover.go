package cover

import (
	"fmt"
	"io"

	"github.com/finitestate/graphcover/core"
	"github.com/finitestate/graphcover/derived"
	"github.com/finitestate/graphcover/rng"
	"github.com/finitestate/graphcover/sampling"
)

// CoverOnce runs a single cover attempt: at each iteration it samples a
// re-injection vertex x from dist, builds the crossing-one derived graph
// at x, draws a weighted walk of length <= maxLength on it, and unions the
// base-graph origin of every visited derived vertex into the running
// coverage set. It loops until every vertex of base is covered, however
// many iterations that takes. A "." is written to progress after each
// iteration, if progress is non-nil, matching the CLI's tick-per-iteration
// output.
func CoverOnce(base *core.Graph, maxLength int, dist Distribution, eng *rng.Engine, progress io.Writer) Result {
	n := base.VertexCount()
	result := newResult(n)
	visited := make(map[core.VertexID]struct{}, n)

	for iter := 1; len(visited) < n; iter++ {
		result.TotalIterations = iter

		x := core.VertexID(dist.Sample(eng))
		d := derived.CrossingOne(base, x)
		walk := sampling.WeightedPath(d, maxLength, eng)
		for _, v := range walk {
			visited[d.OriginOfVertex(v)] = struct{}{}
		}

		recordThresholds(&result, len(visited), n, iter)
		tick(progress)
	}

	result.Covered = len(visited)
	return result
}

// CoverOnceRandom is CoverOnce's random-only counterpart: it draws a plain
// random walk directly on base, with no re-injection vertex distribution
// and no derived-graph construction.
func CoverOnceRandom(base *core.Graph, maxLength int, eng *rng.Engine, progress io.Writer) Result {
	n := base.VertexCount()
	result := newResult(n)
	visited := make(map[core.VertexID]struct{}, n)

	for iter := 1; len(visited) < n; iter++ {
		result.TotalIterations = iter

		walk := sampling.RandomPath(base, maxLength, eng)
		for _, v := range walk {
			visited[v] = struct{}{}
		}

		recordThresholds(&result, len(visited), n, iter)
		tick(progress)
	}

	result.Covered = len(visited)
	return result
}

// CoverMultiple runs CoverOnce attempts independent times and returns
// every attempt's Result, for package metrics to aggregate.
func CoverMultiple(base *core.Graph, maxLength int, dist Distribution, eng *rng.Engine, attempts int, progress io.Writer) []Result {
	results := make([]Result, attempts)
	for i := 0; i < attempts; i++ {
		results[i] = CoverOnce(base, maxLength, dist, eng, progress)
	}
	return results
}

// CoverMultipleRandom runs CoverOnceRandom attempts independent times.
func CoverMultipleRandom(base *core.Graph, maxLength int, eng *rng.Engine, attempts int, progress io.Writer) []Result {
	results := make([]Result, attempts)
	for i := 0; i < attempts; i++ {
		results[i] = CoverOnceRandom(base, maxLength, eng, progress)
	}
	return results
}

func recordThresholds(result *Result, covered, total, iter int) {
	coverage := float64(covered) / float64(total)
	for _, thr := range Thresholds {
		if result.ThresholdIteration[thr] == -1 && coverage >= thr {
			result.ThresholdIteration[thr] = iter
		}
	}
}

func tick(progress io.Writer) {
	if progress != nil {
		fmt.Fprint(progress, ".")
	}
}
