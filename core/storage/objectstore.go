package storage

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// ErrUnavailable marks failures caused by the store being unreachable rather than
// by a rejected request.
var ErrUnavailable = errors.New("object store unavailable")

// ObjectInfo is the metadata the store reports for a single object.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
	ContentType  string
}

// ObjectStore is the remote blob capability the track library is reconciled against.
// Keys follow the "<namespace>/<name>" convention.
type ObjectStore interface {
	// Exists reports whether key is present. A well-formed "not found" is (false, nil).
	Exists(ctx context.Context, key string) (bool, error)
	// Stat returns object metadata. found is false when the object does not exist.
	Stat(ctx context.Context, key string) (info ObjectInfo, found bool, err error)
	// Put stores data under key.
	Put(ctx context.Context, key string, data []byte, contentType string, metadata map[string]string) error
	// PresignGet returns a time-limited URL granting read access to key.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// Admin exposes bucket level operations used by health checks.
type Admin interface {
	// BucketExists reports whether the configured bucket is reachable.
	BucketExists(ctx context.Context) (bool, error)
	// CreateBucket creates the configured bucket.
	CreateBucket(ctx context.Context) error
	// ListKeys returns up to max keys under prefix.
	ListKeys(ctx context.Context, prefix string, max int) ([]string, error)
}

// Open builds the ObjectStore selected by cfg.Provider.
func Open(cfg Config) (ObjectStore, error) {
	switch cfg.Provider {
	case ProviderMinio, "":
		client, err := NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return NewMinioStore(client, cfg.Bucket), nil
	case ProviderS3:
		return NewS3StoreWithConfig(cfg)
	case ProviderMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

// IsUnavailable reports whether err means the store could not be reached at all
// (timeouts, refused connections, DNS failures).
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnavailable) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
