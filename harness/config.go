package harness

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/metailurini/mex/randlist"
)

// Errors
var (
	// ErrInvalidConfig is returned by Validate when the size range cannot
	// produce any samples.
	ErrInvalidConfig = errors.New("invalid sweep configuration")
	// ErrMismatch is returned by Sweep when two variants disagree on the
	// answer for the same list.
	ErrMismatch = errors.New("variants disagree")
)

// Config holds the parameters of a size sweep.
type Config struct {
	// start is the first list length, inclusive
	start int

	// stop is the upper bound on list lengths, exclusive
	stop int

	// step is the increment between list lengths
	step int

	// seed feeds the list generator
	seed uint64

	logger logrus.FieldLogger
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig creates a Config with default values and applies opts in order.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		start:  200_000,
		stop:   1_700_000,
		step:   200_000,
		seed:   randlist.DefaultSeed,
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSizes sets the list lengths to start, start+step, ... below stop.
func WithSizes(start, stop, step int) Option {
	return func(c *Config) {
		c.start = start
		c.stop = stop
		c.step = step
	}
}

// WithSeed sets the generator seed.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.seed = seed }
}

// WithLogger sets the logger used to report samples.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Seed returns the generator seed.
func (c Config) Seed() uint64 {
	return c.seed
}

// Validate checks that the size range is non-empty.
func (c Config) Validate() error {
	if c.start <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "start must be positive, got %d", c.start)
	}
	if c.step <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "step must be positive, got %d", c.step)
	}
	if c.stop <= c.start {
		return errors.Wrapf(ErrInvalidConfig, "stop %d must exceed start %d", c.stop, c.start)
	}
	return nil
}

// Sizes returns the list lengths covered by cfg.
func Sizes(cfg Config) []int {
	if cfg.Validate() != nil {
		return nil
	}
	sizes := make([]int, 0, (cfg.stop-cfg.start+cfg.step-1)/cfg.step)
	for size := cfg.start; size < cfg.stop; size += cfg.step {
		sizes = append(sizes, size)
	}
	return sizes
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
