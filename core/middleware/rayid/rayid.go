package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// Header is the response header carrying the request id.
	Header = "X-Ray-ID"
	// LocalsKey is the fiber locals key holding the request id.
	LocalsKey = "ray_id"
)

// New creates a middleware that assigns a unique RayID to every request.
// An incoming X-Ray-ID header is reused so callers can correlate across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
