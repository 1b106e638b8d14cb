package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loads   int
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loads++
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	a := &stubFeature{name: "a", enabled: true}
	b := &stubFeature{name: "b", enabled: false}
	c := &stubFeature{name: "c", enabled: true}

	mgr := NewManager()
	mgr.Register(a)
	mgr.Register(b)
	mgr.Register(c)

	assert.NoError(t, mgr.LoadAll(fiber.New()))
	assert.Equal(t, 1, a.loads)
	assert.Equal(t, 0, b.loads)
	assert.Equal(t, 1, c.loads)
	assert.Equal(t, []string{"a", "c"}, mgr.Loaded())
}

func TestManager_LoadAllError(t *testing.T) {
	boom := errors.New("boom")
	a := &stubFeature{name: "a", enabled: true, err: boom}
	b := &stubFeature{name: "b", enabled: true}

	mgr := NewManager()
	mgr.Register(a)
	mgr.Register(b)

	err := mgr.LoadAll(fiber.New())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "a")
	assert.Equal(t, 0, b.loads)
	assert.Empty(t, mgr.Loaded())
}

func TestManager_Duplicate(t *testing.T) {
	mgr := NewManager()
	mgr.Register(&stubFeature{name: "a", enabled: true})
	mgr.Register(&stubFeature{name: "a", enabled: true})

	assert.Error(t, mgr.LoadAll(fiber.New()))
}
