package health

import (
	"track-manager/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
}

// HandleHealth runs every health check.
// @Summary Health Check
// @Description Checks the object store bucket and namespace, the local library directory and, when retry state is persisted, the database schema. Optionally creates a missing bucket.
// @Tags health
// @Produce json
// @Param fix query boolean false "Create a missing bucket"
// @Success 200 {object} Report
// @Failure 503 {object} Report "Degraded"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.QueryBool("fix", false)

	report := h.service.check(c.UserContext(), l, fix)
	if !report.Healthy() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
