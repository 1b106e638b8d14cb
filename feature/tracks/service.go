package tracks

import (
	"context"

	"track-manager/core/assets"

	"go.uber.org/zap"
)

// Service answers inventory and location questions about the track library.
type Service struct {
	storage *assets.StorageManager
	logger  *zap.Logger
}

// NewService creates a new tracks service.
func NewService(storage *assets.StorageManager, logger *zap.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// List returns the local inventory sorted by name.
func (s *Service) List(ctx context.Context) []assets.AssetRecord {
	records := s.storage.LocalAssets(ctx)
	if records == nil {
		return []assets.AssetRecord{}
	}
	return records
}

// Locate reports where a track lives.
func (s *Service) Locate(ctx context.Context, name string) (*assets.TrackLocation, error) {
	return s.storage.Locate(ctx, name)
}

// PlaybackURL returns the URL a player should fetch the track from.
func (s *Service) PlaybackURL(ctx context.Context, name string) (string, error) {
	return s.storage.ResolvePlaybackURL(ctx, name)
}
