package reconcile

import (
	"context"

	"track-manager/core/assets"
	"track-manager/core/storage"
)

// Storage is what the Manager needs from the storage layer. *assets.StorageManager
// implements it.
type Storage interface {
	// LocalAssets returns the local library, empty when it cannot be read.
	LocalAssets(ctx context.Context) []assets.AssetRecord

	// RemoteStat returns the remote metadata of a track.
	RemoteStat(ctx context.Context, name string) (storage.ObjectInfo, bool, error)

	// Upload copies one local track to the object store.
	Upload(ctx context.Context, localPath, name string) error
}

var _ Storage = (*assets.StorageManager)(nil)
