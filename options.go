package subspace

import "github.com/rs/zerolog"

type options struct {
	linAlg LinAlg
	logger zerolog.Logger
}

// Option configures a Calculator.
type Option func(*options)

// WithLinAlg sets the linear algebra backend. If nil is passed, Gonum is used.
func WithLinAlg(la LinAlg) Option {
	return func(o *options) {
		if la == nil {
			la = Gonum{}
		}
		o.linAlg = la
	}
}

// WithLogger sets the logger used for debug and warning events.
// The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
