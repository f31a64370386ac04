package sampling

import (
	"github.com/finitestate/graphcover/core"
	"github.com/finitestate/graphcover/paths"
	"github.com/finitestate/graphcover/rng"
)

// weightEpsilon is the total-weight threshold below which a step falls
// back to a uniform choice among its candidates rather than trusting the
// path-count weights.
const weightEpsilon = 1e-9

// candidate is one out-edge the sampler can follow, annotated with its
// selection weight.
type candidate struct {
	edge   core.EdgeID
	weight float64
}

// WeightedPath draws a walk of length at most maxLength from g's initial
// state. At each of up to maxLength steps (k descending from maxLength to
// 1), it weighs every out-edge to w by the number of length-<=(k-1)
// completions from w, drops zero-weight out-edges, and stops as soon as no
// out-edge carries positive weight — at which point the current vertex
// must already be final. Each step picks among the remaining out-edges in
// proportion to those weights. The walk does not stop at a final vertex
// while some out-edge still carries positive weight, so it is not uniform
// over all accepted walks of length <= maxLength: an accepted walk that
// can still be extended is never returned as it is.
//
// Complexity: O(maxLength^2 * (n + m)), since each step recomputes the
// max-length table for the remaining budget.
func WeightedPath(g core.PathGraph, maxLength int, eng *rng.Engine) []core.VertexID {
	current := g.InitialState()
	walk := []core.VertexID{current}

	for k := maxLength; k >= 1; k-- {
		table := paths.ComputeMaxLength(g, k-1)

		candidates := make([]candidate, 0, len(g.OutEdges(current)))
		for _, e := range g.OutEdges(current) {
			w := table.At(int(g.Target(e)), k-1)
			if w > 0 {
				candidates = append(candidates, candidate{edge: e, weight: w})
			}
		}
		if len(candidates) == 0 {
			break
		}

		chosen := pick(candidates, eng.Float64())
		current = g.Target(chosen)
		walk = append(walk, current)
	}

	return walk
}

// RandomPath draws a walk of length at most maxLength from g's initial
// state, choosing uniformly among out-edges at each step regardless of how
// many completions each leads to, stopping only when the current vertex
// has no out-edges.
//
// Complexity: O(maxLength) plus one call per step to OutEdges.
func RandomPath(g core.PathGraph, maxLength int, eng *rng.Engine) []core.VertexID {
	current := g.InitialState()
	walk := []core.VertexID{current}

	for k := maxLength; k >= 1; k-- {
		outs := g.OutEdges(current)
		if len(outs) == 0 {
			break
		}

		candidates := make([]candidate, len(outs))
		for i, e := range outs {
			candidates[i] = candidate{edge: e, weight: 1}
		}

		chosen := pick(candidates, eng.Float64())
		current = g.Target(chosen)
		walk = append(walk, current)
	}

	return walk
}

func pick(candidates []candidate, r float64) core.EdgeID {
	var total float64
	for _, c := range candidates {
		total += c.weight
	}
	if total <= weightEpsilon {
		total = float64(len(candidates))
		for i := range candidates {
			candidates[i].weight = 1
		}
	}

	target := r * total
	var cum float64
	for _, c := range candidates {
		cum += c.weight
		if target < cum {
			return c.edge
		}
	}

	return candidates[len(candidates)-1].edge
}
