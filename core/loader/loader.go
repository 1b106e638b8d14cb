package loader

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Feature is a self-contained module that registers its own routes.
type Feature interface {
	// Name returns the unique name of the feature.
	Name() string
	// IsEnabled reports whether the feature should be loaded.
	IsEnabled() bool
	// Load registers the feature's routes on the router.
	Load(app fiber.Router) error
}

// Manager keeps the registry of features.
type Manager struct {
	features []Feature
	loaded   []string
}

// NewManager creates an empty feature manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a feature to the registry.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadAll loads every enabled feature in registration order and stops at the first failure.
func (m *Manager) LoadAll(app fiber.Router) error {
	seen := make(map[string]bool, len(m.features))
	for _, f := range m.features {
		if seen[f.Name()] {
			return fmt.Errorf("feature %q registered twice", f.Name())
		}
		seen[f.Name()] = true

		if !f.IsEnabled() {
			continue
		}
		if err := f.Load(app); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
		m.loaded = append(m.loaded, f.Name())
	}
	return nil
}

// Loaded returns the names of the features loaded so far.
func (m *Manager) Loaded() []string {
	return append([]string(nil), m.loaded...)
}
