package succinct

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting construction metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Queries are not instrumented: they are allocation-free and bounded, and a
// callback per rank or select would dominate their cost.
type MetricsCollector interface {
	// RecordBuild is called after each index or tree construction.
	// kind names the structure ("rankselect", "louds"), bits is its length.
	RecordBuild(kind string, bits int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildBits       atomic.Int64
	BuildTotalNanos atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(_ string, bits int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.BuildBits.Add(int64(bits))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:    b.BuildCount.Load(),
		BuildErrors:   b.BuildErrors.Load(),
		BuildBits:     b.BuildBits.Load(),
		BuildAvgNanos: b.getAvgBuildNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgBuildNanos() int64 {
	count := b.BuildCount.Load()
	if count == 0 {
		return 0
	}
	return b.BuildTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount    int64
	BuildErrors   int64
	BuildBits     int64
	BuildAvgNanos int64
}
