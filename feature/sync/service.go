package sync

import (
	"context"
	"time"

	"track-manager/core/reconcile"

	"go.uber.org/zap"
)

// RunRequest selects what a sync run uploads.
type RunRequest struct {
	// ForceSync uploads every local track regardless of its status.
	ForceSync bool `json:"forceSync"`
	// SpecificFiles restricts the run to the named tracks. Nil means all tracks;
	// an explicit empty list is rejected.
	SpecificFiles []string `json:"specificFiles"`
}

// StatusReport is the body of a status listing.
type StatusReport struct {
	Files []reconcile.SyncStatus `json:"files"`
	Stats *reconcile.SyncStats   `json:"stats,omitempty"`
}

// Service exposes the sync engine to the HTTP surface, the CLI and the scheduler.
type Service struct {
	manager *reconcile.Manager
	logger  *zap.Logger
}

// NewService creates a new sync service.
func NewService(manager *reconcile.Manager, logger *zap.Logger) *Service {
	return &Service{
		manager: manager,
		logger:  logger,
	}
}

// Status returns the status listing, optionally with aggregate stats computed from
// the same listing.
func (s *Service) Status(ctx context.Context, withStats bool) StatusReport {
	files := s.manager.GetSyncStatus(ctx)
	report := StatusReport{Files: files}
	if withStats {
		stats := reconcile.Summarize(files)
		report.Stats = &stats
	}
	return report
}

// Stats returns aggregate counts for the library.
func (s *Service) Stats(ctx context.Context) reconcile.SyncStats {
	return s.manager.GetSyncStats(ctx)
}

// Run executes one batch. Structural errors come back together with the partial result.
func (s *Service) Run(ctx context.Context, req RunRequest, onProgress reconcile.ProgressFunc) (*reconcile.SyncResult, error) {
	return s.run(ctx, s.logger, req, onProgress)
}

func (s *Service) run(ctx context.Context, l *zap.Logger, req RunRequest, onProgress reconcile.ProgressFunc) (*reconcile.SyncResult, error) {
	progress := func(p reconcile.SyncProgress) {
		if p.CurrentName != "" {
			l.Debug("Sync progress",
				zap.String("track", p.CurrentName),
				zap.Int("percent", p.PercentComplete),
				zap.Int("pending", p.PendingCount))
		}
		if onProgress != nil {
			onProgress(p)
		}
	}

	var (
		result *reconcile.SyncResult
		err    error
	)
	if req.SpecificFiles != nil {
		l.Info("Syncing specific tracks", zap.Strings("tracks", req.SpecificFiles))
		result, err = s.manager.SyncSpecificFiles(ctx, req.SpecificFiles, progress)
	} else {
		l.Info("Syncing library", zap.Bool("force", req.ForceSync))
		result, err = s.manager.SyncFiles(ctx, progress, req.ForceSync)
	}

	if result != nil {
		l.Info("Sync finished",
			zap.Bool("success", result.Success),
			zap.Int("synced", len(result.Synced)),
			zap.Int("failed", len(result.Failed)),
			zap.Int("skipped", len(result.Skipped)),
			zap.Duration("took", time.Duration(result.TotalTimeMs)*time.Millisecond))
		for _, msg := range result.Errors {
			l.Warn("Track sync failed", zap.String("detail", msg))
		}
	}
	if err != nil {
		l.Error("Sync aborted", zap.Error(err))
	}
	return result, err
}

// ClearErrors removes recorded errors for names, or all errors when names is empty.
func (s *Service) ClearErrors(ctx context.Context, names ...string) (int, error) {
	return s.manager.ClearSyncErrors(ctx, names...)
}
