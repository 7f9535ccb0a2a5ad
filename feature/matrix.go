package feature

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is an ordered sequence of equal-dimension feature vectors, one
// row per input graph, row order matching input order.
type Matrix struct {
	rows []*Vector
}

// NewMatrix builds a matrix from rows. All rows must share the same
// dimensionality; nil rows are rejected.
func NewMatrix(rows ...*Vector) (*Matrix, error) {
	m := &Matrix{}
	for i, r := range rows {
		if err := m.Append(r); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return len(m.rows) }

// Row returns the i-th row (nil if out of range).
func (m *Matrix) Row(i int) *Vector {
	if i < 0 || i >= len(m.rows) {
		return nil
	}
	return m.rows[i]
}

// Append adds a row, enforcing uniform dimensionality.
func (m *Matrix) Append(v *Vector) error {
	if v == nil {
		return fmt.Errorf("%w: nil row", ErrDimMismatch)
	}
	if len(m.rows) > 0 && v.bits != m.rows[0].bits {
		return fmt.Errorf("%w: row has %d bits, matrix has %d", ErrDimMismatch, v.bits, m.rows[0].bits)
	}
	m.rows = append(m.rows, v)
	return nil
}

// Dense exports the matrix as a gonum dense matrix of shape
// rows × 2^bits. Intended for small bitsizes.
// Complexity: O(rows · 2^bits)
func (m *Matrix) Dense() (*mat.Dense, error) {
	if len(m.rows) == 0 {
		return nil, ErrEmptyMatrix
	}
	cols := int(m.rows[0].Len())
	out := mat.NewDense(len(m.rows), cols, nil)
	for i, r := range m.rows {
		out.SetRow(i, r.Dense())
	}
	return out, nil
}

// Gram exports the pairwise dot-product matrix G[i][j] = rowᵢ · rowⱼ,
// the explicit-feature-map approximation of the graph kernel matrix.
// Complexity: O(rows² · NNZ)
func (m *Matrix) Gram() (*mat.SymDense, error) {
	if len(m.rows) == 0 {
		return nil, ErrEmptyMatrix
	}
	n := len(m.rows)
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			dot, err := m.rows[i].Dot(m.rows[j])
			if err != nil {
				return nil, err
			}
			out.SetSym(i, j, dot)
		}
	}
	return out, nil
}
