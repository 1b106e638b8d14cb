package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// syncMetricsOnce ensures metrics are only initialized once.
var syncMetricsOnce sync.Once

// syncMetricsInstance is the singleton instance of sync metrics.
var syncMetricsInstance *SyncMetrics

// SyncMetrics holds all Prometheus metrics for track synchronization.
type SyncMetrics struct {
	// Batch metrics
	ItemsTotal    *prometheus.CounterVec // track_manager_sync_items_total{outcome}
	BatchDuration prometheus.Histogram   // track_manager_sync_batch_duration_seconds
	LastBatch     prometheus.Gauge       // track_manager_sync_last_batch_timestamp_seconds

	// Status snapshot
	Tracks *prometheus.GaugeVec // track_manager_tracks{state}
}

// Outcome labels for ItemsTotal.
const (
	OutcomeSynced = "synced"
	OutcomeFailed = "failed"
)

// Init initializes all sync metrics on registry (the default registerer when nil).
// Metrics are only registered once; subsequent calls return the same instance.
func Init(registry prometheus.Registerer) *SyncMetrics {
	syncMetricsOnce.Do(func() {
		syncMetricsInstance = New(registry)
	})
	return syncMetricsInstance
}

// Get returns the singleton instance, or nil if Init was never called.
func Get() *SyncMetrics {
	return syncMetricsInstance
}

// New registers a fresh set of metrics on registry. Tests use it with a private registry.
func New(registry prometheus.Registerer) *SyncMetrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)
	return &SyncMetrics{
		ItemsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "track_manager_sync_items_total",
			Help: "Tracks processed by sync batches, by outcome",
		}, []string{"outcome"}),

		BatchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "track_manager_sync_batch_duration_seconds",
			Help:    "Wall clock duration of sync batches",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}),

		LastBatch: factory.NewGauge(prometheus.GaugeOpts{
			Name: "track_manager_sync_last_batch_timestamp_seconds",
			Help: "Unix time at which the last sync batch finished",
		}),

		Tracks: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "track_manager_tracks",
			Help: "Tracks in the local library by sync state, as of the last status query",
		}, []string{"state"}),
	}
}

// RecordItem counts one processed track. Safe on a nil receiver.
func (m *SyncMetrics) RecordItem(outcome string) {
	if m == nil {
		return
	}
	m.ItemsTotal.WithLabelValues(outcome).Inc()
}

// RecordBatch records a finished batch. Safe on a nil receiver.
func (m *SyncMetrics) RecordBatch(duration time.Duration, finished time.Time) {
	if m == nil {
		return
	}
	m.BatchDuration.Observe(duration.Seconds())
	m.LastBatch.Set(float64(finished.Unix()))
}

// RecordStatus publishes the latest status snapshot. Safe on a nil receiver.
func (m *SyncMetrics) RecordStatus(total, synced, needsSync, failed int) {
	if m == nil {
		return
	}
	m.Tracks.WithLabelValues("total").Set(float64(total))
	m.Tracks.WithLabelValues("synced").Set(float64(synced))
	m.Tracks.WithLabelValues("needs_sync").Set(float64(needsSync))
	m.Tracks.WithLabelValues("failed").Set(float64(failed))
}
