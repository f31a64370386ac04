// Package gmatrix provides a column-major dense numeric buffer used by the
// path-counting DP tables and the alpha matrix.
//
// Column-major storage matters here: the DP recurrence in package paths
// walks a full column (one length k) before advancing to the next column,
// so keeping each column contiguous is the cache-friendly layout.
package gmatrix

import "errors"

// Sentinel errors for gmatrix operations.
var (
	// ErrInvalidDimensions indicates a non-positive row or column count was requested.
	ErrInvalidDimensions = errors.New("gmatrix: invalid dimensions")

	// ErrOutOfRange indicates an At/Set index fell outside the matrix bounds.
	ErrOutOfRange = errors.New("gmatrix: index out of range")

	// ErrDimensionMismatch indicates two matrices have incompatible shapes for an operation.
	ErrDimensionMismatch = errors.New("gmatrix: dimension mismatch")
)
