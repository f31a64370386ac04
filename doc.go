// Package graphcover studies how to cover every state of a directed,
// finite-state transition graph by repeatedly sampling bounded-length paths
// from a fixed initial state.
//
// The module is organized as a small pipeline of packages:
//
//	core/     — dense-ID multidigraph with an initial state and final states
//	gmatrix/  — column-major dense matrix buffer used by the DP tables
//	paths/    — length-bounded path counting (exact and max-length tables)
//	derived/  — layered graphs that force paths to cross one or two vertices
//	sampling/ — weighted and unweighted random path sampling
//	alpha/    — exact and Monte-Carlo joint crossing-count matrices
//	lpsolve/  — maximin linear program over the alpha matrix
//	cover/    — the cover loop and its random/uniform variants
//	metrics/  — per-threshold min/max/mean aggregation across cover attempts
//	ingraph/  — the whitespace-separated graph import format
//	rng/      — deterministic, crypto-seeded random engines
//	builder/  — deterministic scenario-graph constructors used by tests
//	cmd/      — the six CLI programs that exercise the above
//
// Control flow for one experiment: import a graph, derive its eccentricity,
// set length = 2*eccentricity, build an alpha matrix (exact or sampled),
// normalize it, solve the LP for a re-injection distribution pi, then run
// the cover loop many times under pi and aggregate the resulting metrics.
package graphcover
