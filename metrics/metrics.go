package metrics

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/finitestate/graphcover/cover"
)

// ThresholdStats summarizes the iteration counts at which a single
// coverage threshold was first reached, across a batch of cover attempts.
type ThresholdStats struct {
	Min, Max, Mean float64

	// Reached is how many of the batch's attempts have an iteration
	// recorded for this threshold.
	Reached int
}

// MeanMetrics is the per-threshold aggregate of a batch of cover.Result
// values.
type MeanMetrics struct {
	Stats map[float64]ThresholdStats
	Total int
}

// ComputeMeanMetrics aggregates min/max/mean first-crossing iteration per
// threshold across results, skipping attempts that never reached a given
// threshold.
func ComputeMeanMetrics(results []cover.Result) MeanMetrics {
	stats := make(map[float64]ThresholdStats, len(cover.Thresholds))

	for _, thr := range cover.Thresholds {
		vals := make([]float64, 0, len(results))
		for _, r := range results {
			if it, ok := r.ThresholdIteration[thr]; ok && it != -1 {
				vals = append(vals, float64(it))
			}
		}

		if len(vals) == 0 {
			stats[thr] = ThresholdStats{}
			continue
		}

		min, _ := floats.Min(vals)
		max, _ := floats.Max(vals)
		stats[thr] = ThresholdStats{
			Min:     min,
			Max:     max,
			Mean:    floats.Sum(vals) / float64(len(vals)),
			Reached: len(vals),
		}
	}

	return MeanMetrics{Stats: stats, Total: len(results)}
}

// String renders the aggregate as one line per threshold, sorted
// ascending, for the CLI's plain-text summary output.
func (m MeanMetrics) String() string {
	thresholds := make([]float64, 0, len(m.Stats))
	for thr := range m.Stats {
		thresholds = append(thresholds, thr)
	}
	sort.Float64s(thresholds)

	var b strings.Builder
	for _, thr := range thresholds {
		s := m.Stats[thr]
		fmt.Fprintf(&b, "coverage=%.2f reached=%d/%d min=%.1f max=%.1f mean=%.2f\n",
			thr, s.Reached, m.Total, s.Min, s.Max, s.Mean)
	}

	return b.String()
}
