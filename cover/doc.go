// Package cover repeatedly samples walks that are forced through a chosen
// re-injection vertex, growing a set of visited vertices until it reaches
// the whole graph, and records the iteration at which coverage first
// crosses each of a fixed set of thresholds. There is no iteration budget:
// an attempt ends only once every vertex has been visited.
package cover
