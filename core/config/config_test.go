package config

import (
	"os"
	"path/filepath"
	"testing"

	"track-manager/core/assets"
	"track-manager/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, storage.ProviderMinio, cfg.Storage.Provider)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Equal(t, assets.ModeHybrid, cfg.Library.Mode)
	assert.Equal(t, "tracks", cfg.Library.Namespace)
	assert.Contains(t, cfg.Library.Extensions, ".flac")
	assert.Equal(t, []string{"._*", ".*"}, cfg.Library.Exclude)
	assert.Equal(t, 1000, cfg.Sync.ToleranceMs)
	assert.Equal(t, 1, cfg.Sync.Workers)
	assert.Equal(t, []string{"new", "size_mismatch", "missing", "modified"}, cfg.Sync.ReasonOrder)
	assert.False(t, cfg.Sync.PersistState)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("STORAGE_PROVIDER", "memory")
	t.Setenv("LIBRARY_MODE", "remote")
	t.Setenv("LIBRARY_EXTENSIONS", ".mp3,.wav")
	t.Setenv("SYNC_WORKERS", "4")
	t.Setenv("SYNC_PERSIST_STATE", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, storage.ProviderMemory, cfg.Storage.Provider)
	assert.Equal(t, assets.ModeRemote, cfg.Library.Mode)
	assert.Equal(t, []string{".mp3", ".wav"}, cfg.Library.Extensions)
	assert.Equal(t, 4, cfg.Sync.Workers)
	assert.True(t, cfg.Sync.PersistState)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SYNC_TOLERANCE_MS=250\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("SYNC_TOLERANCE_MS") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Sync.ToleranceMs)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Provider", func(c *Config) { c.Storage.Provider = "ftp" }},
		{"Mode", func(c *Config) { c.Library.Mode = "cloud" }},
		{"Driver", func(c *Config) { c.Sync.PersistState = true; c.Database.Driver = "oracle" }},
		{"Workers", func(c *Config) { c.Sync.Workers = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
