// Package reconcile keeps the local track library and the object store in sync.
//
// The Manager computes a SyncStatus per local track, executes sync batches with
// progress callbacks, and keeps retryable error state between calls.
//
// # Staleness
//
// A track needs sync when any of these hold:
//   - new: the object store does not have it
//   - size_mismatch: the remote size differs from the local size
//   - missing: a previous attempt failed and the error was not cleared
//   - modified: the local mtime is later than the remote mtime plus a tolerance (1s by default)
//
// Only the first applicable reason in the configured precedence is reported
// (new > size_mismatch > missing > modified by default).
//
// # Batches
//
// SyncFiles and SyncSpecificFiles attempt every candidate exactly once. Item failures
// are isolated and reported in the SyncResult; Synced, Failed and Skipped partition the
// names considered by the call. Uploads run on a bounded worker pool (one worker by
// default). Progress snapshots are delivered synchronously, in order, before and after
// every attempt.
//
// Structural errors are returned together with the partial result: the context error
// when the batch is cancelled (unattempted candidates are skipped) and
// ErrStoreUnreachable when every attempted upload failed to reach the store.
//
// # Retry State
//
// The last attempt time and last error of each track live in a StateStore owned by
// the Manager: MemoryStateStore for the process lifetime or GormStateStore for
// durability across restarts.
//
// # Usage Example
//
//	sm := assets.NewStorageManager(store, cfg.Library, cfg.Storage.Timeout(), log)
//	mgr := reconcile.NewManager(sm, reconcile.NewMemoryStateStore(), cfg.Sync, log)
//
//	statuses := mgr.GetSyncStatus(ctx)
//	result, err := mgr.SyncFiles(ctx, func(p reconcile.SyncProgress) {
//	    fmt.Printf("%d%%\n", p.PercentComplete)
//	}, false)
package reconcile
