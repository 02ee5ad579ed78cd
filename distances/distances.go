// Package distances holds reductions over pairs of orthogonal projector matrices.
package distances

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SumGap sums every entry of p1 - p2 and returns sqrt(sum²), the absolute
// value of that sum. Different projectors with equal entry sums give 0.
func SumGap(p1, p2 *mat.Dense) float64 {
	diff := difference(p1, p2)
	sum := floats.Sum(diff.RawMatrix().Data)
	return math.Sqrt(sum * sum)
}

// Frobenius returns the Frobenius norm of p1 - p2.
func Frobenius(p1, p2 *mat.Dense) float64 {
	diff := difference(p1, p2)
	raw := diff.RawMatrix()
	return blas64.Nrm2(blas64.Vector{N: len(raw.Data), Inc: 1, Data: raw.Data})
}

// difference returns a freshly allocated, contiguous p1 - p2.
func difference(p1, p2 *mat.Dense) *mat.Dense {
	diff := mat.DenseCopyOf(p1)
	diff.Sub(diff, p2)
	return diff
}
