package lpsolve

import (
	"time"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/finitestate/graphcover/gmatrix"
	"github.com/finitestate/graphcover/rng"
)

// solveTimeout bounds how long ComputePi will wait for the parametric
// simplex method before giving up and returning a zero vector; the
// solver has no native cancellation, so the call runs in a goroutine that
// is abandoned (not killed) past the deadline.
const solveTimeout = 120 * time.Second

// tol is the numeric tolerance passed to lp.Parametric for detecting zero
// pivots.
const tol = 1e-9

// ComputePi solves the maximin linear program
//
//	maximize    p_min
//	subject to  sum_j a[i][j]*pi[j] >= p_min   for every row i
//	            sum_j pi[j] = 1
//	            pi[j] >= 0
//
// over the n x n matrix a, returning the mixture pi. On any solver error
// or timeout it returns an all-zero vector of length n rather than a
// partial or stale result.
func ComputePi(a *gmatrix.Dense, eng *rng.Engine) []float64 {
	n := a.Rows()
	if n == 0 {
		return nil
	}

	c, A, b := lower(a)

	type result struct {
		x   []float64
		err error
	}
	done := make(chan result, 1)

	go func() {
		src := xrand.NewSource(uint64(eng.Seed()))
		_, x, _, err := lp.Parametric(c, A, b, tol, nil, true, xrand.New(src))
		done <- result{x: x, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return make([]float64, n)
		}
		return r.x[:n]
	case <-time.After(solveTimeout):
		return make([]float64, n)
	}
}

// lower rewrites the maximin LP over the n x n matrix a into standard
// form min c'x s.t. Ax = b, x >= 0, with variables ordered
// [pi_0..pi_{n-1}, p_min, s_0..s_{n-1}]: one slack s_i per row converts
// "sum_j a[i][j]*pi[j] >= p_min" into an equality, and one extra row
// enforces sum_j pi[j] = 1.
func lower(a *gmatrix.Dense) (c []float64, A *mat.Dense, b []float64) {
	n := a.Rows()
	nVars := 2*n + 1 // pi (n) + p_min (1) + slacks (n)
	nRows := n + 1

	A = mat.NewDense(nRows, nVars, nil)
	b = make([]float64, nRows)
	c = make([]float64, nVars)

	piOffset := 0
	pMinIdx := n
	slackOffset := n + 1

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, piOffset+j, a.At(i, j))
		}
		A.Set(i, pMinIdx, -1)
		A.Set(i, slackOffset+i, -1)
		b[i] = 0
	}

	for j := 0; j < n; j++ {
		A.Set(n, piOffset+j, 1)
	}
	b[n] = 1

	c[pMinIdx] = -1 // minimize -p_min == maximize p_min

	return c, A, b
}
