package tracks

import (
	"track-manager/core/assets"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	library assets.Config
}

// NewFeature creates a new Tracks feature.
func NewFeature(storage *assets.StorageManager, library assets.Config, logger *zap.Logger) *Feature {
	svc := NewService(storage, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h, library: library}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "tracks"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes. The local library is served as static files
// unless the library runs in remote mode.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	if f.library.Mode != assets.ModeRemote && f.library.MediaRoute != "" {
		app.Static(f.library.MediaRoute, f.library.Directory, fiber.Static{
			ByteRange: true,
			Browse:    false,
		})
	}
	return nil
}
