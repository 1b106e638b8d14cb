// Package sync exposes the reconciliation engine over HTTP and on a schedule.
//
// # Components
//
//   - Service: wraps reconcile.Manager with request logging.
//   - Handler: HTTP endpoints.
//   - Scheduler: optional cron driven background sync (robfig/cron). Overlapping runs are skipped.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET    /sync/status?stats=true : status listing, optionally with aggregate stats.
//   - POST   /sync                   : run a batch. Body {"forceSync": bool, "specificFiles": [...]}.
//     Returns 503 with the partial result when the object store is unreachable.
//   - DELETE /sync/errors            : clear recorded errors. Body {"files": [...]} or empty for all.
package sync
