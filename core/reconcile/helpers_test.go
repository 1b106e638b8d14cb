package reconcile

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"track-manager/core/assets"
	"track-manager/core/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var baseTime = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

// fixture wires a Manager to a temp library and an in-memory object store.
type fixture struct {
	t     *testing.T
	dir   string
	store *storage.MemoryStore
	sm    *assets.StorageManager
	state *MemoryStateStore
	mgr   *Manager
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	store := storage.NewMemoryStore()
	// Remote copies always look newer than the local files written by tests.
	store.SetClock(func() time.Time { return baseTime.Add(time.Hour) })
	return newFixtureWithStore(t, cfg, store)
}

func newFixtureWithStore(t *testing.T, cfg Config, store storage.ObjectStore) *fixture {
	t.Helper()
	dir := t.TempDir()
	sm := assets.NewStorageManager(store, assets.Config{
		Directory: dir,
		Mode:      assets.ModeHybrid,
		Namespace: "tracks",
	}, time.Second, zap.NewNop())
	state := NewMemoryStateStore()
	if cfg.ToleranceMs == 0 {
		cfg.ToleranceMs = 1000
	}
	f := &fixture{
		t:     t,
		dir:   dir,
		sm:    sm,
		state: state,
		mgr:   NewManager(sm, state, cfg, zap.NewNop()),
	}
	if ms, ok := store.(*storage.MemoryStore); ok {
		f.store = ms
	}
	return f
}

// write creates a local track of size bytes with mtime baseTime.
func (f *fixture) write(name string, size int) {
	f.writeAt(name, size, baseTime)
}

func (f *fixture) writeAt(name string, size int, modified time.Time) {
	f.t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(f.t, os.WriteFile(path, make([]byte, size), 0o644))
	require.NoError(f.t, os.Chtimes(path, modified, modified))
}

func (f *fixture) remove(name string) {
	f.t.Helper()
	require.NoError(f.t, os.Remove(filepath.Join(f.dir, name)))
}

func statusByName(statuses []SyncStatus, name string) (SyncStatus, bool) {
	for _, s := range statuses {
		if s.Name == name {
			return s, true
		}
	}
	return SyncStatus{}, false
}

// progressRecorder collects progress snapshots.
type progressRecorder struct {
	mu        sync.Mutex
	snapshots []SyncProgress
}

func (r *progressRecorder) record(p SyncProgress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, p)
}

func assertPartition(t *testing.T, res *SyncResult, universe []string) {
	t.Helper()
	seen := make(map[string]int)
	for _, list := range [][]string{res.Synced, res.Failed, res.Skipped} {
		for _, name := range list {
			seen[name]++
		}
	}
	for name, n := range seen {
		require.Equalf(t, 1, n, "%s appears in more than one list", name)
	}
	require.Len(t, seen, len(universe))
	for _, name := range universe {
		require.Containsf(t, seen, name, "%s missing from result", name)
	}
	require.Equal(t, len(res.Failed) == 0, res.Success)
}
