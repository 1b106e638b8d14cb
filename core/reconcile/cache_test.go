package reconcile

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusCache_TTL(t *testing.T) {
	now := baseTime
	c := newStatusCache(time.Minute, func() time.Time { return now })

	var builds int32
	build := func(ctx context.Context) []SyncStatus {
		atomic.AddInt32(&builds, 1)
		return []SyncStatus{{Name: "a"}}
	}

	c.get(context.Background(), build)
	c.get(context.Background(), build)
	assert.Equal(t, int32(1), atomic.LoadInt32(&builds))

	now = now.Add(2 * time.Minute)
	c.get(context.Background(), build)
	assert.Equal(t, int32(2), atomic.LoadInt32(&builds))

	c.invalidate()
	c.get(context.Background(), build)
	assert.Equal(t, int32(3), atomic.LoadInt32(&builds))
}

func TestStatusCache_Disabled(t *testing.T) {
	c := newStatusCache(0, time.Now)

	var builds int32
	build := func(ctx context.Context) []SyncStatus {
		atomic.AddInt32(&builds, 1)
		return nil
	}

	out := c.get(context.Background(), build)
	c.get(context.Background(), build)
	assert.Equal(t, int32(2), atomic.LoadInt32(&builds))
	assert.NotNil(t, out)
}

func TestStatusCache_Coalesces(t *testing.T) {
	c := newStatusCache(0, time.Now)

	release := make(chan struct{})
	var builds int32
	build := func(ctx context.Context) []SyncStatus {
		atomic.AddInt32(&builds, 1)
		<-release
		return []SyncStatus{{Name: "a"}}
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := c.get(context.Background(), build)
			assert.Len(t, out, 1)
		}()
	}

	// Give the callers time to join the in-flight build.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&builds), int32(5))
	assert.GreaterOrEqual(t, atomic.LoadInt32(&builds), int32(1))
}

func TestStatusCache_InvalidateDuringBuild(t *testing.T) {
	c := newStatusCache(time.Hour, time.Now)

	build := func(ctx context.Context) []SyncStatus {
		// A sync finishes while the listing is being computed.
		c.invalidate()
		return []SyncStatus{{Name: "stale"}}
	}
	c.get(context.Background(), build)

	var rebuilt bool
	c.get(context.Background(), func(ctx context.Context) []SyncStatus {
		rebuilt = true
		return nil
	})
	assert.True(t, rebuilt)
}

func TestStatusCache_ReturnsCopies(t *testing.T) {
	c := newStatusCache(time.Hour, time.Now)
	build := func(ctx context.Context) []SyncStatus {
		return []SyncStatus{{Name: "a"}}
	}

	out := c.get(context.Background(), build)
	out[0].Name = "mutated"
	assert.Equal(t, "a", c.get(context.Background(), build)[0].Name)
}

func TestStatusCache_BuildOutlivesCaller(t *testing.T) {
	c := newStatusCache(0, time.Now)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buildErr error
	c.get(ctx, func(ctx context.Context) []SyncStatus {
		buildErr = ctx.Err()
		return nil
	})
	assert.NoError(t, buildErr)
}
