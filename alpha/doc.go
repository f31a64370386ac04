// Package alpha computes the joint crossing-count matrix: for each pair of
// vertices (i, j), how many accepted walks pass through both. It offers an
// exact construction via package derived and a Monte Carlo approximation
// via repeated sampling, plus the diagonal normalization the rest of the
// module reads distributions from.
package alpha
