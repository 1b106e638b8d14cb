package reconcile

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"track-manager/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGormStore(t *testing.T) *GormStateStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	store, err := NewGormStateStore(db)
	require.NoError(t, err)
	return store
}

func TestStateStores(t *testing.T) {
	stores := map[string]func(t *testing.T) StateStore{
		"Memory": func(t *testing.T) StateStore { return NewMemoryStateStore() },
		"Gorm":   func(t *testing.T) StateStore { return newGormStore(t) },
	}

	for name, factory := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := factory(t)

			require.NoError(t, s.RecordFailure(ctx, "a.mp3", baseTime, "boom"))
			require.NoError(t, s.RecordFailure(ctx, "b.mp3", baseTime, "bang"))
			require.NoError(t, s.RecordSuccess(ctx, "c.mp3", baseTime))

			all, err := s.All(ctx)
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, "boom", all["a.mp3"].LastError)
			assert.Empty(t, all["c.mp3"].LastError)
			assert.True(t, all["a.mp3"].LastAttempt.Equal(baseTime))

			// Overwritten by a later success
			later := baseTime.Add(time.Minute)
			require.NoError(t, s.RecordSuccess(ctx, "a.mp3", later))
			all, err = s.All(ctx)
			require.NoError(t, err)
			assert.Empty(t, all["a.mp3"].LastError)
			assert.True(t, all["a.mp3"].LastAttempt.Equal(later))

			cleared, err := s.ClearErrors(ctx, "b.mp3", "c.mp3", "unknown.mp3")
			require.NoError(t, err)
			assert.Equal(t, 1, cleared)

			require.NoError(t, s.RecordFailure(ctx, "a.mp3", later, "again"))
			require.NoError(t, s.RecordFailure(ctx, "b.mp3", later, "again"))
			cleared, err = s.ClearErrors(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, cleared)

			all, err = s.All(ctx)
			require.NoError(t, err)
			for name, a := range all {
				assert.Emptyf(t, a.LastError, "%s still has an error", name)
			}
		})
	}
}

func TestMemoryStateStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStateStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("t%d.mp3", i%10)
			if i%2 == 0 {
				_ = s.RecordFailure(ctx, name, baseTime, "x")
			} else {
				_ = s.RecordSuccess(ctx, name, baseTime)
			}
			_, _ = s.All(ctx)
			_, _ = s.ClearErrors(ctx, name)
		}(i)
	}
	wg.Wait()

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)
}

func TestManager_WithGormState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Config{})
	state := newGormStore(t)
	f.mgr = NewManager(f.sm, state, Config{ToleranceMs: 1000}, f.mgr.logger)

	f.write("a.mp3", 3)
	f.store.FailPut("tracks/a.mp3", fmt.Errorf("denied"))
	_, err := f.mgr.SyncFiles(ctx, nil, false)
	require.NoError(t, err)

	// A new manager over the same table sees the recorded error.
	restarted := NewManager(f.sm, state, Config{ToleranceMs: 1000}, f.mgr.logger)
	s := restarted.GetSyncStatus(ctx)[0]
	assert.Contains(t, s.SyncError, "denied")
	assert.NotNil(t, s.LastSyncAttempt)
}
