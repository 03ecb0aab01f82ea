// Package prometheus exports wordbloom metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := wbprom.NewCollector(reg)
//	if err != nil { ... }
//	report, err := dictionary.Load(ctx, r, f, dictionary.WithMetricsCollector(mc))
//
// Serve reg with promhttp.HandlerFor to expose the metrics.
package prometheus

import (
	"time"

	"github.com/hupe1980/wordbloom"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wordbloom"

// Collector implements wordbloom.MetricsCollector on top of Prometheus
// counters, histograms and gauges.
type Collector struct {
	loads        *prometheus.CounterVec
	loadLatency  prometheus.Histogram
	wordsLoaded  prometheus.Counter
	linesSkipped prometheus.Counter

	queries      *prometheus.CounterVec
	queryLatency prometheus.Histogram

	filterBits    prometheus.Gauge
	filterHashes  prometheus.Gauge
	filterBitsSet prometheus.Gauge
	filterFPR     prometheus.Gauge
}

var _ wordbloom.MetricsCollector = (*Collector)(nil)

// NewCollector creates a collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dictionary_loads_total",
			Help:      "Dictionary loads by outcome.",
		}, []string{"status"}),
		loadLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dictionary_load_duration_seconds",
			Help:      "Time spent loading a dictionary.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		wordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dictionary_words_total",
			Help:      "Words inserted into the filter.",
		}),
		linesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dictionary_lines_skipped_total",
			Help:      "Malformed dictionary lines that were skipped.",
		}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Membership queries by result.",
		}, []string{"result"}),
		queryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Latency of membership queries.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		}),
		filterBits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "filter_size_bits",
			Help:      "Number of bits in the filter.",
		}),
		filterHashes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "filter_hash_functions",
			Help:      "Number of hash functions per item.",
		}),
		filterBitsSet: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "filter_bits_set",
			Help:      "Number of bits currently set.",
		}),
		filterFPR: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "filter_estimated_false_positive_rate",
			Help:      "False-positive rate estimated from the fill ratio.",
		}),
	}

	for _, col := range []prometheus.Collector{
		c.loads, c.loadLatency, c.wordsLoaded, c.linesSkipped,
		c.queries, c.queryLatency,
		c.filterBits, c.filterHashes, c.filterBitsSet, c.filterFPR,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordLoad implements wordbloom.MetricsCollector.
func (c *Collector) RecordLoad(words, skipped uint64, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.loads.WithLabelValues(status).Inc()
	c.loadLatency.Observe(duration.Seconds())
	c.wordsLoaded.Add(float64(words))
	c.linesSkipped.Add(float64(skipped))
}

// RecordQuery implements wordbloom.MetricsCollector.
func (c *Collector) RecordQuery(possible bool, duration time.Duration) {
	result := "absent"
	if possible {
		result = "possible"
	}
	c.queries.WithLabelValues(result).Inc()
	c.queryLatency.Observe(duration.Seconds())
}

// ObserveFilter publishes the current filter parameters and fill.
func (c *Collector) ObserveFilter(s wordbloom.Stats) {
	c.filterBits.Set(float64(s.Size()))
	c.filterHashes.Set(float64(s.HashCount()))
	c.filterBitsSet.Set(float64(s.BitsSet()))
	c.filterFPR.Set(s.EstimatedFalsePositiveRate())
}
