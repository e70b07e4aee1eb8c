package verify

import (
	"fmt"
	"runtime"

	"github.com/hupe1980/wordcopy/internal/word"
)

// DefaultMaxSize is the largest copy size in the default grid.
const DefaultMaxSize = 1024

type options struct {
	sizes   []int
	maxSize int
	workers int
	ops     []Op
	fence   bool
	logger  *Logger

	path      word.Path
	checkPath bool
}

// Option configures a sweep.
type Option func(*options)

func defaultOptions() options {
	return options{
		maxSize: DefaultMaxSize,
		workers: runtime.GOMAXPROCS(0),
		ops:     DefaultOps(),
		logger:  NoopLogger(),
	}
}

// WithSizes replaces the size grid with an explicit list.
func WithSizes(sizes ...int) Option {
	return func(o *options) {
		o.sizes = sizes
	}
}

// WithMaxSize bounds the default size grid. It has no effect together with
// WithSizes.
func WithMaxSize(n int) Option {
	return func(o *options) {
		o.maxSize = n
	}
}

// WithWorkers sets how many cases run concurrently.
// Values below 1 fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithOps selects the operations to sweep.
//
// If no ops are passed, DefaultOps is used.
func WithOps(ops ...Op) Option {
	return func(o *options) {
		if len(ops) == 0 {
			ops = DefaultOps()
		}
		o.ops = ops
	}
}

// WithFence places every copy source so that it ends on an inaccessible
// page, turning any read past the region into an ErrFault. Sources are then
// swept at the single word offset that ends on the page boundary for each
// size. Move cases are unaffected.
func WithFence(enabled bool) Option {
	return func(o *options) {
		o.fence = enabled
	}
}

// WithExpectPath makes Run fail with ErrPathMismatch unless the build
// selected path p.
func WithExpectPath(p word.Path) Option {
	return func(o *options) {
		o.path = p
		o.checkPath = true
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func (o *options) validate() error {
	if o.sizes == nil && o.maxSize < 0 {
		return fmt.Errorf("max size %d: %w", o.maxSize, ErrInvalidSize)
	}
	for _, s := range o.sizes {
		if s < 0 {
			return fmt.Errorf("size %d: %w", s, ErrInvalidSize)
		}
	}
	for _, op := range o.ops {
		if _, ok := ParseOp(string(op)); !ok {
			return fmt.Errorf("%q: %w", op, ErrUnknownOp)
		}
	}
	if active := word.ActivePath(); o.checkPath && o.path != active {
		return fmt.Errorf("built with %s, want %s: %w", active, o.path, ErrPathMismatch)
	}
	return nil
}
