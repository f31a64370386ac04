package alpha

import "github.com/finitestate/graphcover/gmatrix"

// NormalizeByDiagonal returns a new matrix where each column j is divided
// by a[j][j], turning raw joint crossing counts into "fraction of
// crossings of j that also crossed i". A column whose diagonal is zero
// (vertex j never crossed in the sample) is left as all zeros rather than
// divided by zero.
func NormalizeByDiagonal(a *gmatrix.Dense) *gmatrix.Dense {
	n, m := a.Rows(), a.Cols()
	out, err := gmatrix.NewDense(n, m)
	if err != nil {
		panic(err)
	}

	for j := 0; j < m; j++ {
		diag := a.At(j, j)
		if diag == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			out.Set(i, j, a.At(i, j)/diag)
		}
	}

	return out
}
