package subspace

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGonumSolve(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{2, 0, 0, 4})
	b := mat.NewDense(2, 1, []float64{2, 2})
	x, err := Gonum{}.Solve(a, b)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(x, mat.NewDense(2, 1, []float64{1, 0.5}), tol))

	_, err = Gonum{}.Solve(mat.NewDense(2, 2, []float64{1, 1, 1, 1}), b)
	assert.ErrorIs(t, err, ErrSingularMatrix)
}

func TestGonumTrace(t *testing.T) {
	assert.Equal(t, 5.0, Gonum{}.Trace(mat.NewDense(2, 2, []float64{1, 7, 7, 4})))
}

func TestGonumCCASidesKeepTheirWidth(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	x := randomMatrix(rnd, 40, 2)
	y := randomMatrix(rnd, 40, 3)

	narrow, err := Gonum{}.CCA(x, y)
	require.NoError(t, err)
	assert.Len(t, narrow.Left, 2)
	assert.Len(t, narrow.Right, 3)

	wide, err := Gonum{}.CCA(y, x)
	require.NoError(t, err)
	assert.Len(t, wide.Left, 3)
	assert.Len(t, wide.Right, 2)

	assert.InDelta(t, narrow.Correlation, wide.Correlation, tol)
	assert.Greater(t, narrow.Correlation, 0.0)
}

func TestGonumRank(t *testing.T) {
	assert.Equal(t, 2, Gonum{}.Rank(plane12()))
	assert.Equal(t, 0, Gonum{}.Rank(mat.NewDense(3, 2, nil)))

	rnd := rand.New(rand.NewSource(9))
	s := randomMatrix(rnd, 6, 3)
	for i := 0; i < 6; i++ {
		s.Set(i, 1, -1.5*s.At(i, 0))
	}
	assert.Equal(t, 2, Gonum{}.Rank(s))
}

func TestGonumCCARejectsDegenerateData(t *testing.T) {
	rnd := rand.New(rand.NewSource(10))
	y := randomMatrix(rnd, 8, 2)

	_, err := Gonum{}.CCA(mat.NewDense(8, 2, nil), y)
	assert.ErrorIs(t, err, ErrCanonicalFit)

	_, err = Gonum{}.CCA(y, randomMatrix(rnd, 8, 8))
	assert.ErrorIs(t, err, ErrCanonicalFit)

	x := randomMatrix(rnd, 8, 2)
	for i := 0; i < 8; i++ {
		x.Set(i, 1, 2*x.At(i, 0)+1)
	}
	_, err = Gonum{}.CCA(x, y)
	assert.ErrorIs(t, err, ErrCanonicalFit)
}

func TestFinite(t *testing.T) {
	assert.True(t, finite(1, -2, 0))
	assert.False(t, finite(1, math.NaN()))
	assert.False(t, finite(math.Inf(-1)))
}
