package gmatrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context, e.g.
// "Dense.At(3,7): gmatrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete column-major r×c matrix of float64.
type Dense struct {
	rows, cols int
	data       []float64 // len == rows*cols; data[col*rows+row]
}

// NewDense allocates an r×c Dense matrix initialized to zero.
//
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

func (m *Dense) index(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	return col*m.rows + row, nil
}

// At returns the element at (row, col).
//
// Complexity: O(1).
func (m *Dense) At(row, col int) float64 {
	off, err := m.index(row, col)
	if err != nil {
		panic(err)
	}

	return m.data[off]
}

// TryAt returns the element at (row, col), or ErrOutOfRange on a bad index.
func (m *Dense) TryAt(row, col int) (float64, error) {
	off, err := m.index(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set writes v at (row, col).
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) {
	off, err := m.index(row, col)
	if err != nil {
		panic(err)
	}

	m.data[off] = v
}

// AddAt increments the element at (row, col) by delta. Used by the Monte
// Carlo alpha-matrix builder, where every sampled path's crossing pairs
// accumulate into the same cells.
func (m *Dense) AddAt(row, col int, delta float64) {
	off, err := m.index(row, col)
	if err != nil {
		panic(err)
	}

	m.data[off] += delta
}

// Clone returns a deep copy of m.
//
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{rows: m.rows, cols: m.cols, data: cp}
}

// Column returns a freshly-allocated copy of column j.
//
// Complexity: O(r).
func (m *Dense) Column(j int) []float64 {
	col := make([]float64, m.rows)
	copy(col, m.data[j*m.rows:(j+1)*m.rows])

	return col
}
