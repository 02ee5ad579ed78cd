package subspace

import "errors"

var (
	// ErrSingularMatrix is returned when the Gram matrix SᵗS of a basis cannot be
	// inverted, i.e. the columns are linearly dependent or there are more columns
	// than rows.
	ErrSingularMatrix = errors.New("subspace: singular matrix")

	// ErrMissingArgument is returned by Canonical mode when no observation matrix is given.
	ErrMissingArgument = errors.New("subspace: missing argument")

	ErrDimensionMismatch = errors.New("subspace: dimension mismatch")
	ErrInvalidMode       = errors.New("subspace: invalid mode")
	ErrNilMatrix         = errors.New("subspace: nil matrix")
	ErrEmptySelection    = errors.New("subspace: empty column selection")

	// ErrCanonicalFit wraps failures of the CCA solver (zero variance, failed SVD).
	ErrCanonicalFit = errors.New("subspace: canonical correlation fit failed")
)
