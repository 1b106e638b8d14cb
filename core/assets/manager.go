package assets

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"track-manager/core/storage"

	"go.uber.org/zap"
)

// Location names a side of the hybrid library.
type Location string

const (
	LocationLocal  Location = "local"
	LocationRemote Location = "remote"
)

// TrackLocation reports where a track currently lives.
type TrackLocation struct {
	Name    string   `json:"name"`
	Local   string   `json:"local,omitempty"`
	Remote  string   `json:"remote,omitempty"`
	Primary Location `json:"primary"`
}

// StorageManager resolves where a track lives and moves tracks to the object store.
type StorageManager struct {
	store   storage.ObjectStore
	cfg     Config
	timeout time.Duration
	logger  *zap.Logger
}

// NewStorageManager creates a StorageManager. Every object store call is bounded by timeout.
func NewStorageManager(store storage.ObjectStore, cfg Config, timeout time.Duration, logger *zap.Logger) *StorageManager {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if cfg.MediaRoute == "" {
		cfg.MediaRoute = "/media"
	}
	if cfg.PresignExpiryMinutes <= 0 {
		cfg.PresignExpiryMinutes = 60
	}
	return &StorageManager{
		store:   store,
		cfg:     cfg,
		timeout: timeout,
		logger:  logger,
	}
}

// Key returns the object key for a track name.
func (m *StorageManager) Key(name string) string {
	ns := strings.Trim(m.cfg.Namespace, "/")
	if ns == "" {
		return name
	}
	return ns + "/" + name
}

// LocalAssets scans the library. An unreadable directory is logged and reported as empty.
func (m *StorageManager) LocalAssets(ctx context.Context) []AssetRecord {
	records, err := Scan(m.cfg.Directory, m.cfg.ScanOptions())
	if err != nil {
		m.logger.Warn("Local library scan failed, treating as empty",
			zap.String("directory", m.cfg.Directory),
			zap.Error(err))
		return nil
	}
	return records
}

// FindLocal looks up a single track in the library.
func (m *StorageManager) FindLocal(ctx context.Context, name string) (AssetRecord, bool) {
	return Lookup(m.cfg.Directory, name, m.cfg.ScanOptions())
}

// RemoteExists reports whether the track is present in the object store.
func (m *StorageManager) RemoteExists(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.store.Exists(ctx, m.Key(name))
}

// RemoteStat returns the object metadata of the track, if present.
func (m *StorageManager) RemoteStat(ctx context.Context, name string) (storage.ObjectInfo, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.store.Stat(ctx, m.Key(name))
}

// Locate reports both sides of a track. Both sides are always checked; the mode only
// decides which one is primary when the track exists in both.
func (m *StorageManager) Locate(ctx context.Context, name string) (*TrackLocation, error) {
	loc := &TrackLocation{Name: name}

	if rec, ok := m.FindLocal(ctx, name); ok {
		loc.Local = rec.Path
	}

	exists, err := m.RemoteExists(ctx, name)
	if err != nil {
		if loc.Local == "" {
			return nil, fmt.Errorf("failed to check remote copy of %s: %w", name, err)
		}
		m.logger.Warn("Remote check failed, reporting local copy only",
			zap.String("name", name),
			zap.Error(err))
	} else if exists {
		loc.Remote = m.Key(name)
	}

	switch {
	case loc.Local != "" && loc.Remote != "":
		loc.Primary = LocationLocal
		if m.cfg.Mode == ModeRemote {
			loc.Primary = LocationRemote
		}
	case loc.Local != "":
		loc.Primary = LocationLocal
	case loc.Remote != "":
		loc.Primary = LocationRemote
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return loc, nil
}

// Upload reads the local file fully and stores it under the track's key.
// Failures are returned as *UploadError; there is no internal retry.
func (m *StorageManager) Upload(ctx context.Context, localPath, name string) error {
	info, err := os.Stat(localPath)
	if err != nil {
		return &UploadError{Name: name, Cause: err}
	}
	data, err := os.ReadFile(localPath)
	if err != nil {
		return &UploadError{Name: name, Cause: err}
	}

	metadata := map[string]string{
		"original-name":     name,
		"local-modified-at": info.ModTime().UTC().Format(time.RFC3339Nano),
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if err := m.store.Put(ctx, m.Key(name), data, ContentType(name), metadata); err != nil {
		return &UploadError{Name: name, Cause: err}
	}
	m.logger.Debug("Uploaded track",
		zap.String("name", name),
		zap.Int("bytes", len(data)))
	return nil
}

// ResolvePlaybackURL returns the media route path when the track is served locally,
// otherwise a presigned URL for the remote copy.
func (m *StorageManager) ResolvePlaybackURL(ctx context.Context, name string) (string, error) {
	if m.cfg.Mode != ModeRemote {
		if _, ok := m.FindLocal(ctx, name); ok {
			return strings.TrimRight(m.cfg.MediaRoute, "/") + "/" + url.PathEscape(name), nil
		}
	}

	exists, err := m.RemoteExists(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to check remote copy of %s: %w", name, err)
	}
	if !exists {
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	expiry := time.Duration(m.cfg.PresignExpiryMinutes) * time.Minute
	u, err := m.store.PresignGet(ctx, m.Key(name), expiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", name, err)
	}
	return u, nil
}

// IsNotFound reports whether err is ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
