package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/logging"
	"go.uber.org/zap"
)

type options struct {
	logger  *zap.Logger
	gravity cp.Vector
	iters   uint
}

// Option configures a system at construction.
type Option func(*options)

// WithLogger routes a system's diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithGravity sets the physics space gravity. The default is zero, which
// suits a top-down arena.
func WithGravity(g cp.Vector) Option {
	return func(o *options) {
		o.gravity = g
	}
}

// WithIterations sets the solver iteration count of the physics space.
func WithIterations(n uint) Option {
	return func(o *options) {
		if n > 0 {
			o.iters = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{iters: 20}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.logger = logging.OrNop(o.logger)
	return o
}
