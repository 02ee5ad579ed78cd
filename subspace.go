// Package subspace measures how far apart two linear subspaces are.
//
// A subspace is given by a matrix whose columns span it. Two families of
// measures are supported: comparisons of the orthogonal projectors onto the
// subspaces (Dist, Trace) and canonical correlation analysis of the subspaces
// projected into a common observation space (Canonical).
package subspace

import (
	"errors"
	"fmt"

	"github.com/maxjustus/go-subspace/distances"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Calculator computes subspace distances. It holds no mutable state and is
// safe for concurrent use.
type Calculator struct {
	linAlg LinAlg
	logger zerolog.Logger
}

func New(opts ...Option) *Calculator {
	o := options{
		linAlg: Gonum{},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Calculator{linAlg: o.linAlg, logger: o.logger}
}

var defaultCalculator = New()

// Distance computes the measure selected by mode between the subspaces spanned
// by the columns of s1 and s2 using the default Calculator.
// x is only used by Canonical and may be nil otherwise.
func Distance(s1, s2 mat.Matrix, mode Mode, x mat.Matrix) (float64, error) {
	return defaultCalculator.Distance(s1, s2, mode, x)
}

// Projector returns S(SᵗS)⁻¹Sᵗ using the default Calculator.
func Projector(s mat.Matrix) (*mat.Dense, error) {
	return defaultCalculator.Projector(s)
}

// CanonicalCorrelation fits a one component CCA between x·s1 and x·s2 using
// the default Calculator.
func CanonicalCorrelation(s1, s2, x mat.Matrix) (*CanonicalFit, error) {
	return defaultCalculator.CanonicalCorrelation(s1, s2, x)
}

func (c *Calculator) Distance(s1, s2 mat.Matrix, mode Mode, x mat.Matrix) (float64, error) {
	if isNil(s1) || isNil(s2) {
		return 0, ErrNilMatrix
	}

	var (
		d   float64
		err error
	)
	switch mode {
	case Dist:
		d, err = c.dist(s1, s2)
	case Trace:
		d, err = c.trace(s1, s2)
	case Canonical:
		d, err = c.canonical(s1, s2, x)
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
	if err != nil {
		return 0, err
	}

	n, k1 := s1.Dims()
	_, k2 := s2.Dims()
	c.logger.Debug().
		Stringer("mode", mode).
		Int("n", n).
		Int("k1", k1).
		Int("k2", k2).
		Float64("distance", d).
		Msg("subspace distance")

	return d, nil
}

// Projector returns the orthogonal projector S(SᵗS)⁻¹Sᵗ onto the column space of s.
// The columns of s must be linearly independent, otherwise ErrSingularMatrix is returned.
func (c *Calculator) Projector(s mat.Matrix) (*mat.Dense, error) {
	if isNil(s) {
		return nil, ErrNilMatrix
	}

	n, k := s.Dims()
	if k > n {
		return nil, fmt.Errorf("%w: %d basis vectors in %d dimensions", ErrSingularMatrix, k, n)
	}
	if r := c.linAlg.Rank(s); r < k {
		return nil, fmt.Errorf("%w: %d basis vectors of rank %d", ErrSingularMatrix, k, r)
	}

	gram := c.linAlg.Mul(s.T(), s)
	coef, err := c.linAlg.Solve(gram, s.T())

	var cond mat.Condition
	if errors.As(err, &cond) {
		c.logger.Warn().Float64("condition", float64(cond)).Msg("ill-conditioned gram matrix")
		return nil, fmt.Errorf("%w: gram matrix condition number %g", ErrSingularMatrix, float64(cond))
	}
	if err != nil {
		return nil, err
	}

	return c.linAlg.Mul(s, coef), nil
}

// CanonicalCorrelation validates x against s1 and s2 and fits a one component
// CCA between x·s1 and x·s2.
func (c *Calculator) CanonicalCorrelation(s1, s2, x mat.Matrix) (*CanonicalFit, error) {
	if isNil(s1) || isNil(s2) {
		return nil, ErrNilMatrix
	}
	if isNil(x) {
		return nil, fmt.Errorf("%w: x must be specified for canonical mode", ErrMissingArgument)
	}

	m, n := x.Dims()
	if n != RowCount(s1) {
		return nil, fmt.Errorf("%w: x has %d columns, s1 has %d rows", ErrDimensionMismatch, n, RowCount(s1))
	}
	if n != RowCount(s2) {
		return nil, fmt.Errorf("%w: x has %d columns, s2 has %d rows", ErrDimensionMismatch, n, RowCount(s2))
	}
	if m < 2 {
		return nil, fmt.Errorf("%w: x needs at least 2 observations, got %d", ErrDimensionMismatch, m)
	}

	return c.linAlg.CCA(c.linAlg.Mul(x, s1), c.linAlg.Mul(x, s2))
}

func (c *Calculator) projectors(s1, s2 mat.Matrix) (p1, p2 *mat.Dense, err error) {
	if RowCount(s1) != RowCount(s2) {
		return nil, nil, fmt.Errorf("%w: s1 has %d rows, s2 has %d rows", ErrDimensionMismatch, RowCount(s1), RowCount(s2))
	}
	if p1, err = c.Projector(s1); err != nil {
		return nil, nil, fmt.Errorf("s1: %w", err)
	}
	if p2, err = c.Projector(s2); err != nil {
		return nil, nil, fmt.Errorf("s2: %w", err)
	}
	return p1, p2, nil
}

func (c *Calculator) dist(s1, s2 mat.Matrix) (float64, error) {
	p1, p2, err := c.projectors(s1, s2)
	if err != nil {
		return 0, err
	}
	return distances.SumGap(p1, p2), nil
}

func (c *Calculator) trace(s1, s2 mat.Matrix) (float64, error) {
	p1, p2, err := c.projectors(s1, s2)
	if err != nil {
		return 0, err
	}
	return c.linAlg.Trace(c.linAlg.Mul(p1, p2)) / float64(ColCount(s1)), nil
}

func (c *Calculator) canonical(s1, s2, x mat.Matrix) (float64, error) {
	fit, err := c.CanonicalCorrelation(s1, s2, x)
	if err != nil {
		return 0, err
	}
	return stat.Mean(fit.Left, nil), nil
}
