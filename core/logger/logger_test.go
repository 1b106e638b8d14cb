package logger

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want zapcore.Level
	}{
		{"DebugConsole", Config{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{"InfoJSON", Config{Level: "info", Format: "json"}, zapcore.InfoLevel},
		{"Warn", Config{Level: "warn"}, zapcore.WarnLevel},
		{"UnknownFallsBackToInfo", Config{Level: "chatty"}, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track-manager.log")
	l, err := New(&Config{Level: "info", File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	l.Info("hello file", zap.String("k", "v"))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello file"`)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestWithRayID(t *testing.T) {
	app := fiber.New()
	base := zap.NewNop()

	app.Get("/", func(c *fiber.Ctx) error {
		assert.Same(t, base, WithRayID(base, c))
		c.Locals("ray_id", "abc")
		assert.NotSame(t, base, WithRayID(base, c))
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
