package metrics_test

import (
	"testing"

	"github.com/finitestate/graphcover/cover"
	"github.com/finitestate/graphcover/metrics"
	"github.com/stretchr/testify/require"
)

func resultWithIterations(iterations map[float64]int) cover.Result {
	return cover.Result{ThresholdIteration: iterations, Total: 3}
}

func TestComputeMeanMetricsAggregatesAcrossAttempts(t *testing.T) {
	results := []cover.Result{
		resultWithIterations(map[float64]int{0.5: 2, 0.9: 4, 0.95: -1, 0.99: -1, 1.0: -1}),
		resultWithIterations(map[float64]int{0.5: 3, 0.9: 6, 0.95: -1, 0.99: -1, 1.0: -1}),
	}

	m := metrics.ComputeMeanMetrics(results)
	require.Equal(t, 2.0, m.Stats[0.5].Min)
	require.Equal(t, 3.0, m.Stats[0.5].Max)
	require.InDelta(t, 2.5, m.Stats[0.5].Mean, 1e-9)
	require.Equal(t, 2, m.Stats[0.5].Reached)
}

func TestComputeMeanMetricsHandlesNeverReachedThreshold(t *testing.T) {
	results := []cover.Result{
		resultWithIterations(map[float64]int{0.5: 1, 0.9: -1, 0.95: -1, 0.99: -1, 1.0: -1}),
	}

	m := metrics.ComputeMeanMetrics(results)
	require.Equal(t, 0, m.Stats[0.9].Reached)
	require.Equal(t, 0.0, m.Stats[0.9].Mean)
}

func TestStringRendersOneLinePerThreshold(t *testing.T) {
	results := []cover.Result{
		resultWithIterations(map[float64]int{0.5: 1, 0.9: 2, 0.95: 3, 0.99: 4, 1.0: 5}),
	}
	m := metrics.ComputeMeanMetrics(results)
	s := m.String()
	require.Contains(t, s, "coverage=0.50")
	require.Contains(t, s, "coverage=1.00")
}
