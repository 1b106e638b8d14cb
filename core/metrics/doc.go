// Package metrics exposes Prometheus instrumentation for the sync engine.
//
// The reconcile manager records per-track outcomes, batch durations and a status
// snapshot. All recording methods tolerate a nil *SyncMetrics so metrics stay optional.
package metrics
