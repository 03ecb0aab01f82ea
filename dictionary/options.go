package dictionary

import (
	"time"

	"github.com/hupe1980/wordbloom"
)

type options struct {
	logger     *wordbloom.Logger
	metrics    wordbloom.MetricsCollector
	strict     bool
	maxSkipped uint64
	warnFirst  int
	warnEvery  time.Duration
}

func defaultOptions() options {
	return options{
		logger:    wordbloom.NoopLogger(),
		metrics:   wordbloom.NoopMetricsCollector{},
		warnFirst: 10,
		warnEvery: time.Second,
	}
}

// Option configures Load.
type Option func(*options)

// WithLogger sets the logger for skipped-line warnings and the load summary.
// If nil is passed, logging is disabled.
func WithLogger(l *wordbloom.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = wordbloom.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector reports each load to mc.
// If nil is passed, metrics collection is disabled.
func WithMetricsCollector(mc wordbloom.MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = wordbloom.NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithStrict makes the first malformed line fail the load with a *LineError.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithMaxSkipped fails the load with ErrTooManyMalformed once more than n
// lines have been skipped. Zero means unlimited.
func WithMaxSkipped(n uint64) Option {
	return func(o *options) {
		o.maxSkipped = n
	}
}

// WithWarningRate logs the first `first` skipped lines, then at most one per
// interval.
func WithWarningRate(first int, interval time.Duration) Option {
	return func(o *options) {
		o.warnFirst = first
		o.warnEvery = interval
	}
}
