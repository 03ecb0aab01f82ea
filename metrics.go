package wordbloom

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see the metrics/prometheus package).
type MetricsCollector interface {
	// RecordLoad is called after each dictionary load.
	// words is the number of inserted words, skipped the number of malformed
	// lines, err is nil if the load completed.
	RecordLoad(words, skipped uint64, duration time.Duration, err error)

	// RecordQuery is called after each membership query.
	RecordQuery(possible bool, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(uint64, uint64, time.Duration, error) {}
func (NoopMetricsCollector) RecordQuery(bool, time.Duration)                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	LoadCount       atomic.Int64
	LoadErrors      atomic.Int64
	WordsLoaded     atomic.Int64
	LinesSkipped    atomic.Int64
	LoadTotalNanos  atomic.Int64
	QueryCount      atomic.Int64
	QueryPossible   atomic.Int64
	QueryTotalNanos atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(words, skipped uint64, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.WordsLoaded.Add(int64(words))
	b.LinesSkipped.Add(int64(skipped))
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(possible bool, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if possible {
		b.QueryPossible.Add(1)
	}
}

// AverageQueryLatency returns the mean query duration, or 0 with no queries.
func (b *BasicMetricsCollector) AverageQueryLatency() time.Duration {
	n := b.QueryCount.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(b.QueryTotalNanos.Load() / n)
}
