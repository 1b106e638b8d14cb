package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	env := setupTestApp(t)
	_, err := NewScheduler("not a schedule", env.svc, zap.NewNop())
	assert.Error(t, err)
}

func TestScheduler_Runs(t *testing.T) {
	env := setupTestApp(t)
	env.writeTrack(t, "a.mp3", 10)

	s, err := NewScheduler("@every 1s", env.svc, zap.NewNop())
	require.NoError(t, err)
	s.Start()

	assert.Eventually(t, func() bool {
		return env.store.PutCount() > 0
	}, 5*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.Stop(ctx)

	stats := env.svc.Stats(context.Background())
	assert.Equal(t, 1, stats.Synced)
}
