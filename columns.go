package subspace

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/mat"
)

func RowCount(m mat.Matrix) int {
	r, _ := m.Dims()
	return r
}

func ColCount(m mat.Matrix) int {
	_, c := m.Dims()
	return c
}

// Columns returns a basis made of the columns of m selected by cols, in ascending order.
func Columns(m mat.Matrix, cols *bitset.BitSet) (*mat.Dense, error) {
	if isNil(m) {
		return nil, ErrNilMatrix
	}
	if cols == nil || cols.None() {
		return nil, ErrEmptySelection
	}

	r, c := m.Dims()
	dst := mat.NewDense(r, int(cols.Count()), nil)
	j := 0
	for i, ok := cols.NextSet(0); ok; i, ok = cols.NextSet(i + 1) {
		if int(i) >= c {
			return nil, fmt.Errorf("%w: column %d selected from a matrix with %d columns", ErrDimensionMismatch, i, c)
		}
		for row := 0; row < r; row++ {
			dst.Set(row, j, m.At(row, int(i)))
		}
		j++
	}
	return dst, nil
}

func isNil(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*mat.Dense)
	return ok && d == nil
}
