package bkdtree

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems other than
// Prometheus; BasicMetricsCollector already integrates with Prometheus
// directly.
type MetricsCollector interface {
	// RecordBuild is called after a KDT's initial bulk construction.
	RecordBuild(items int, duration time.Duration)

	// RecordInsert is called after each BKDT insert.
	// duration is the time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordMerge is called after a slot-merge cascade collapses the base
	// buffer and predecessor slots into a new frozen slot.
	RecordMerge(slot, mergedItems int, duration time.Duration)

	// RecordSearch is called after each ForEach, ForEachEqual and
	// ForEachRange call; the lazy Get and GetAll sequences do not call it.
	// resultsFound is the number of items visited before completion or
	// cancellation.
	RecordSearch(resultsFound int, duration time.Duration)

	// RecordNearestNeighbor is called after each nearest-neighbor query.
	RecordNearestNeighbor(found bool, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration)            {}
func (NoopMetricsCollector) RecordInsert(time.Duration, error)         {}
func (NoopMetricsCollector) RecordMerge(int, int, time.Duration)       {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration)           {}
func (NoopMetricsCollector) RecordNearestNeighbor(bool, time.Duration) {}

// BasicMetricsCollector is a MetricsCollector backed by Prometheus
// collectors. Its collectors are registered with the Registerer passed to
// NewBasicMetricsCollector; serve that registry through promhttp to expose
// them as a scrape endpoint.
type BasicMetricsCollector struct {
	buildCount           prometheus.Counter
	buildItems           prometheus.Counter
	insertDuration       prometheus.Histogram
	insertErrors         prometheus.Counter
	mergeCount           prometheus.Counter
	mergeItems           prometheus.Counter
	searchDuration       prometheus.Histogram
	nearestNeighborTotal prometheus.Counter
	nearestNeighborFound prometheus.Counter
}

// NewBasicMetricsCollector constructs a BasicMetricsCollector and, unless reg
// is nil, registers its collectors with reg.
func NewBasicMetricsCollector(reg prometheus.Registerer) *BasicMetricsCollector {
	b := &BasicMetricsCollector{
		buildCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bkdtree", Name: "build_total", Help: "Number of KDT bulk builds.",
		}),
		buildItems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bkdtree", Name: "build_items_total", Help: "Total items across all KDT bulk builds.",
		}),
		insertDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bkdtree", Name: "insert_duration_seconds", Help: "BKDT insert latency.",
			Buckets: prometheus.DefBuckets,
		}),
		insertErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bkdtree", Name: "insert_errors_total", Help: "Number of failed BKDT inserts.",
		}),
		mergeCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bkdtree", Name: "merge_total", Help: "Number of slot-merge cascades.",
		}),
		mergeItems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bkdtree", Name: "merge_items_total", Help: "Total items rebuilt across all slot merges.",
		}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bkdtree", Name: "search_duration_seconds", Help: "Query (get/for_each/range) latency.",
			Buckets: prometheus.DefBuckets,
		}),
		nearestNeighborTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bkdtree", Name: "nearest_neighbor_total", Help: "Number of nearest-neighbor queries.",
		}),
		nearestNeighborFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bkdtree", Name: "nearest_neighbor_found_total", Help: "Number of nearest-neighbor queries that found a result.",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			b.buildCount, b.buildItems, b.insertDuration, b.insertErrors,
			b.mergeCount, b.mergeItems, b.searchDuration,
			b.nearestNeighborTotal, b.nearestNeighborFound,
		)
	}
	return b
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(items int, duration time.Duration) {
	b.buildCount.Inc()
	b.buildItems.Add(float64(items))
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.insertDuration.Observe(duration.Seconds())
	if err != nil {
		b.insertErrors.Inc()
	}
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge(slot, mergedItems int, duration time.Duration) {
	b.mergeCount.Inc()
	b.mergeItems.Add(float64(mergedItems))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(resultsFound int, duration time.Duration) {
	b.searchDuration.Observe(duration.Seconds())
}

// RecordNearestNeighbor implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNearestNeighbor(found bool, duration time.Duration) {
	b.nearestNeighborTotal.Inc()
	if found {
		b.nearestNeighborFound.Inc()
	}
}
