package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"track-manager/core/metrics"
	"track-manager/core/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Manager reconciles the local track library with the object store. It owns the retry
// state through its StateStore; construct one per process and share it.
type Manager struct {
	storage   Storage
	state     StateStore
	logger    *zap.Logger
	metrics   *metrics.SyncMetrics
	tolerance time.Duration
	order     []SyncReason
	workers   int
	cache     *statusCache
	now       func() time.Time
}

// NewManager creates a Manager.
func NewManager(store Storage, state StateStore, cfg Config, logger *zap.Logger) *Manager {
	if state == nil {
		state = NewMemoryStateStore()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	m := &Manager{
		storage:   store,
		state:     state,
		logger:    logger,
		tolerance: cfg.Tolerance(),
		order:     cfg.Reasons(),
		workers:   workers,
		now:       time.Now,
	}
	m.cache = newStatusCache(time.Duration(cfg.StatusCacheTTLSeconds)*time.Second, func() time.Time { return m.now() })
	return m
}

// WithMetrics attaches Prometheus instrumentation.
func (m *Manager) WithMetrics(sm *metrics.SyncMetrics) *Manager {
	m.metrics = sm
	return m
}

// GetSyncStatus returns the status of every local track: entries with a sync error
// first, then those needing sync, then synced ones, each group by name. It never fails;
// a degraded store or library shows up in the entries.
func (m *Manager) GetSyncStatus(ctx context.Context) []SyncStatus {
	return m.cache.get(ctx, m.computeStatus)
}

func (m *Manager) computeStatus(ctx context.Context) []SyncStatus {
	local := m.storage.LocalAssets(ctx)

	attempts, err := m.state.All(ctx)
	if err != nil {
		m.logger.Warn("Failed to load retry state", zap.Error(err))
		attempts = map[string]Attempt{}
	}

	statuses := make([]SyncStatus, len(local))
	var g errgroup.Group
	g.SetLimit(m.workers)
	for i := range local {
		asset := local[i]
		g.Go(func() error {
			info, found, err := m.storage.RemoteStat(ctx, asset.Name)
			if err != nil {
				m.logger.Warn("Remote stat failed, reporting track as not synced",
					zap.String("name", asset.Name),
					zap.Error(err))
				info, found = storage.ObjectInfo{}, false
			}
			attempt, hasAttempt := attempts[asset.Name]
			statuses[i] = evaluate(asset, info, found, attempt, hasAttempt, m.tolerance, m.order)
			return nil
		})
	}
	_ = g.Wait()

	sortStatuses(statuses)
	m.recordStatus(statuses)
	return statuses
}

// SyncFiles uploads every track that needs it, or every local track when force is set.
// Item failures are reported in the result. The returned error is non-nil only for
// structural failures (cancellation, unreachable store) and always comes with the
// partial result.
func (m *Manager) SyncFiles(ctx context.Context, onProgress ProgressFunc, force bool) (*SyncResult, error) {
	local := m.storage.LocalAssets(ctx)

	var statuses []SyncStatus
	if !force {
		statuses = m.computeStatus(ctx)
	}
	candidates, skipped := planAll(local, statuses, force)

	m.logger.Info("Starting sync batch",
		zap.Int("candidates", len(candidates)),
		zap.Int("skipped", len(skipped)),
		zap.Bool("force", force))

	return m.runBatch(ctx, candidates, skipped, onProgress)
}

// SyncSpecificFiles uploads the named tracks. Duplicate names are attempted once; a name
// without a local file fails with ErrLocalFileMissing and never reaches the store.
func (m *Manager) SyncSpecificFiles(ctx context.Context, names []string, onProgress ProgressFunc) (*SyncResult, error) {
	if len(names) == 0 {
		return nil, ErrNoFiles
	}

	local := m.storage.LocalAssets(ctx)
	candidates, skipped := planNamed(local, names)

	m.logger.Info("Starting targeted sync batch",
		zap.Int("candidates", len(candidates)),
		zap.Int("skipped", len(skipped)))

	return m.runBatch(ctx, candidates, skipped, onProgress)
}

// GetSyncStats aggregates the current status listing.
func (m *Manager) GetSyncStats(ctx context.Context) SyncStats {
	return Summarize(m.GetSyncStatus(ctx))
}

// Summarize aggregates a status listing. Synced + NeedsSync always equals Total.
func Summarize(statuses []SyncStatus) SyncStats {
	stats := SyncStats{Total: len(statuses)}
	for _, s := range statuses {
		if s.NeedsSync {
			stats.NeedsSync++
		} else {
			stats.Synced++
		}
		if s.SyncError != "" {
			stats.Failed++
		}
		if s.LastSyncAttempt != nil && (stats.LastSyncTimestamp == nil || s.LastSyncAttempt.After(*stats.LastSyncTimestamp)) {
			at := *s.LastSyncAttempt
			stats.LastSyncTimestamp = &at
		}
	}
	return stats
}

// ClearSyncErrors removes the recorded errors of the named tracks, or of all tracks
// when no names are given. It returns how many errors were removed.
func (m *Manager) ClearSyncErrors(ctx context.Context, names ...string) (int, error) {
	cleared, err := m.state.ClearErrors(ctx, names...)
	m.cache.invalidate()
	if err != nil {
		return cleared, err
	}
	m.logger.Info("Cleared sync errors",
		zap.Int("cleared", cleared),
		zap.Strings("names", names))
	return cleared, nil
}

// batch tracks the running state of one sync call. All fields are guarded by mu.
type batch struct {
	mu          sync.Mutex
	result      *SyncResult
	total       int
	attempted   int
	unavailable int
	onProgress  ProgressFunc
}

// emit must be called with mu held so snapshots are ordered and counts never go back.
func (b *batch) emit(current string) {
	if b.onProgress == nil {
		return
	}
	done := len(b.result.Synced) + len(b.result.Failed)
	percent := 100
	if b.total > 0 {
		percent = done * 100 / b.total
	}
	b.onProgress(SyncProgress{
		Total:           b.total,
		SyncedSoFar:     len(b.result.Synced),
		FailedSoFar:     len(b.result.Failed),
		PendingCount:    b.total - done,
		CurrentName:     current,
		PercentComplete: percent,
	})
}

func (m *Manager) runBatch(ctx context.Context, candidates []candidate, skipped []string, onProgress ProgressFunc) (*SyncResult, error) {
	start := m.now()
	b := &batch{
		result: &SyncResult{
			Synced:  []string{},
			Failed:  []string{},
			Skipped: append([]string{}, skipped...),
			Errors:  []string{},
		},
		total:      len(candidates),
		onProgress: onProgress,
	}

	var g errgroup.Group
	g.SetLimit(m.workers)
	for i, c := range candidates {
		if ctx.Err() != nil {
			b.mu.Lock()
			for _, rest := range candidates[i:] {
				b.result.Skipped = append(b.result.Skipped, rest.name)
			}
			b.mu.Unlock()
			break
		}
		g.Go(func() error {
			m.process(ctx, b, c)
			return nil
		})
	}
	_ = g.Wait()

	m.cache.invalidate()

	res := b.result
	sort.Strings(res.Skipped)
	res.Success = len(res.Failed) == 0
	finished := m.now()
	res.TotalTimeMs = finished.Sub(start).Milliseconds()
	m.metrics.RecordBatch(finished.Sub(start), finished)

	m.logger.Info("Sync batch finished",
		zap.Int("synced", len(res.Synced)),
		zap.Int("failed", len(res.Failed)),
		zap.Int("skipped", len(res.Skipped)),
		zap.Int64("total_time_ms", res.TotalTimeMs))

	if err := ctx.Err(); err != nil {
		return res, err
	}
	if b.attempted > 0 && b.unavailable == b.attempted {
		return res, ErrStoreUnreachable
	}
	return res, nil
}

// process attempts one candidate and records its outcome.
func (m *Manager) process(ctx context.Context, b *batch, c candidate) {
	if ctx.Err() != nil {
		b.mu.Lock()
		b.result.Skipped = append(b.result.Skipped, c.name)
		b.mu.Unlock()
		return
	}

	b.mu.Lock()
	b.emit(c.name)
	b.mu.Unlock()

	var err error
	if c.asset == nil {
		err = ErrLocalFileMissing
	} else {
		err = m.storage.Upload(ctx, c.asset.Path, c.name)
	}
	at := m.now()

	if err != nil {
		if stateErr := m.state.RecordFailure(ctx, c.name, at, err.Error()); stateErr != nil {
			m.logger.Warn("Failed to record sync failure", zap.String("name", c.name), zap.Error(stateErr))
		}
		m.logger.Warn("Track sync failed", zap.String("name", c.name), zap.Error(err))
		m.metrics.RecordItem(metrics.OutcomeFailed)
	} else {
		if stateErr := m.state.RecordSuccess(ctx, c.name, at); stateErr != nil {
			m.logger.Warn("Failed to record sync success", zap.String("name", c.name), zap.Error(stateErr))
		}
		m.metrics.RecordItem(metrics.OutcomeSynced)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if c.asset != nil {
		b.attempted++
		if err != nil && storage.IsUnavailable(err) {
			b.unavailable++
		}
	}
	if err != nil {
		b.result.Failed = append(b.result.Failed, c.name)
		b.result.Errors = append(b.result.Errors, fmt.Sprintf("%s: %s", c.name, err.Error()))
	} else {
		b.result.Synced = append(b.result.Synced, c.name)
	}
	b.emit(c.name)
}

func (m *Manager) recordStatus(statuses []SyncStatus) {
	if m.metrics == nil {
		return
	}
	stats := Summarize(statuses)
	m.metrics.RecordStatus(stats.Total, stats.Synced, stats.NeedsSync, stats.Failed)
}

// IsStructural reports whether a batch error is one of the structural failures that come
// with a partial result.
func IsStructural(err error) bool {
	return errors.Is(err, ErrStoreUnreachable) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
