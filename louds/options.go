package louds

import (
	"github.com/hupe1980/succinct"
	"github.com/hupe1980/succinct/rankselect"
)

type options struct {
	rankSelect       []rankselect.Option
	logger           *succinct.Logger
	metricsCollector succinct.MetricsCollector
}

func defaultOptions() options {
	return options{
		logger:           succinct.NoopLogger(),
		metricsCollector: succinct.NoopMetricsCollector{},
	}
}

// Option configures tree construction.
type Option func(*options)

// WithRankSelectOptions forwards options to the rank/select index built by
// FromBitvector, FromDegrees and FromChildren. New ignores them.
func WithRankSelectOptions(opts ...rankselect.Option) Option {
	return func(o *options) {
		o.rankSelect = append(o.rankSelect, opts...)
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
func WithMetricsCollector(mc succinct.MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = succinct.NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
