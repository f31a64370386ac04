// Package lpsolve computes the maximin distribution over vertices: the
// mixture pi that maximizes the worst-case row sum of A*pi over the
// alpha matrix, used by package cover to pick a re-injection vertex that
// is hardest to starve of coverage.
package lpsolve
