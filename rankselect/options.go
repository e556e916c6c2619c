package rankselect

import (
	"github.com/hupe1980/succinct"
)

// DefaultFactor is the superblock width in words used when none is configured.
const DefaultFactor = 20

// minParallelSuperblocks is the smallest superblock count worth fanning out.
const minParallelSuperblocks = 1024

type options struct {
	factor           int
	parallelism      int
	logger           *succinct.Logger
	metricsCollector succinct.MetricsCollector
}

func defaultOptions() options {
	return options{
		factor:           DefaultFactor,
		parallelism:      1,
		logger:           succinct.NoopLogger(),
		metricsCollector: succinct.NoopMetricsCollector{},
	}
}

// Option configures index construction.
type Option func(*options)

// WithFactor sets the superblock width in 64-bit words.
//
// Zero selects DefaultFactor. Negative values make New fail.
func WithFactor(factor int) Option {
	return func(o *options) {
		if factor == 0 {
			factor = DefaultFactor
		}
		o.factor = factor
	}
}

// WithParallelism sets how many goroutines count superblocks during
// construction. Values <= 1 build sequentially. Small inputs are always
// counted sequentially.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithLogger sets the logger used to report builds.
// If nil is passed, logging is disabled.
func WithLogger(l *succinct.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = succinct.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified after each build.
// If nil is passed, metrics are disabled.
func WithMetricsCollector(mc succinct.MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = succinct.NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
