// Package paths implements the dynamic-programming tables of length-bounded
// path counts that the rest of the module's sampling and alpha-matrix
// machinery read from.
package paths
