package subspace

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// LinAlg is the set of linear algebra operations a Calculator needs.
type LinAlg interface {
	Mul(a, b mat.Matrix) *mat.Dense
	// Solve returns X with A·X = B. A mat.Condition error means A is too
	// ill-conditioned for X to be trusted.
	Solve(a, b mat.Matrix) (*mat.Dense, error)
	Trace(a mat.Matrix) float64
	// Rank returns the numerical rank of a.
	Rank(a mat.Matrix) int
	// CCA fits a single component canonical correlation analysis between
	// the columns of x and y, which share their rows as observations.
	CCA(x, y mat.Matrix) (*CanonicalFit, error)
}

// CanonicalFit is the first canonical component of a CCA fit.
type CanonicalFit struct {
	Correlation float64
	// Left and Right are the canonical weights of the x and y variables
	// in the original data space.
	Left  []float64
	Right []float64
}

// Gonum implements LinAlg with gonum's mat and stat packages.
type Gonum struct{}

func (Gonum) Mul(a, b mat.Matrix) *mat.Dense {
	var m mat.Dense
	m.Mul(a, b)
	return &m
}

func (Gonum) Solve(a, b mat.Matrix) (*mat.Dense, error) {
	var x mat.Dense
	err := x.Solve(a, b)
	if errors.Is(err, mat.ErrSingular) {
		return nil, ErrSingularMatrix
	}
	return &x, err
}

func (Gonum) Trace(a mat.Matrix) float64 {
	return mat.Trace(a)
}

// Rank counts the singular values of a above max(r, c)·eps·σmax.
func (Gonum) Rank(a mat.Matrix) int {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDNone) {
		return 0
	}
	vals := svd.Values(nil)
	if len(vals) == 0 {
		return 0
	}

	r, c := a.Dims()
	tol := float64(max(r, c)) * 0x1p-52 * vals[0]
	rank := 0
	for _, v := range vals {
		if v > tol {
			rank++
		}
	}
	return rank
}

func (g Gonum) CCA(x, y mat.Matrix) (*CanonicalFit, error) {
	n, xd := x.Dims()
	_, yd := y.Dims()
	if n-1 < max(xd, yd) {
		return nil, fmt.Errorf("%w: %d observations for %d variables", ErrCanonicalFit, n, max(xd, yd))
	}

	// stat.CC sizes its left vectors xd×yd, so keep the wider side on the left.
	if xd < yd {
		fit, err := g.CCA(y, x)
		if err != nil {
			return nil, err
		}
		fit.Left, fit.Right = fit.Right, fit.Left
		return fit, nil
	}

	// stat.CC divides by the singular values of the centered data.
	if r := g.Rank(centered(x)); r < xd {
		return nil, fmt.Errorf("%w: centered x has rank %d of %d", ErrCanonicalFit, r, xd)
	}
	if r := g.Rank(centered(y)); r < yd {
		return nil, fmt.Errorf("%w: centered y has rank %d of %d", ErrCanonicalFit, r, yd)
	}

	var cc stat.CC
	if err := cc.CanonicalCorrelations(x, y, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCanonicalFit, err)
	}

	var left, right mat.Dense
	cc.LeftTo(&left, false)
	cc.RightTo(&right, false)

	fit := &CanonicalFit{
		Correlation: cc.CorrsTo(nil)[0],
		Left:        mat.Col(nil, 0, &left),
		Right:       mat.Col(nil, 0, &right),
	}
	if !finite(fit.Correlation) || !finite(fit.Left...) || !finite(fit.Right...) {
		return nil, fmt.Errorf("%w: non-finite canonical weights", ErrCanonicalFit)
	}
	return fit, nil
}

// centered returns a copy of m with every column shifted to zero mean.
func centered(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	dst := mat.DenseCopyOf(m)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, dst)
		floats.AddConst(-stat.Mean(col, nil), col)
		dst.SetCol(j, col)
	}
	return dst
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
