// Package sampling draws random walks from a core.PathGraph, either
// weighted by the path-counting tables in package paths (each step in
// proportion to the number of length-bounded completions it leads to) or
// uniformly over out-edges
// regardless of how many completions each leads to.
package sampling
