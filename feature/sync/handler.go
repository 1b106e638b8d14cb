package sync

import (
	"errors"

	"track-manager/core/logger"
	"track-manager/core/reconcile"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the sync engine.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Get("/status", h.HandleStatus)
	group.Post("/", h.HandleSync)
	group.Delete("/errors", h.HandleClearErrors)
}

// ClearRequest is the optional body of DELETE /sync/errors.
type ClearRequest struct {
	Files []string `json:"files"`
}

// HandleStatus lists the sync status of every local track.
// @Summary Sync Status
// @Description Lists every local track with its remote state, sorted failed first, then pending, then synced.
// @Tags sync
// @Produce json
// @Param stats query boolean false "Include aggregate stats"
// @Success 200 {object} StatusReport
// @Router /sync/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	withStats := c.QueryBool("stats", false)
	return c.JSON(h.service.Status(c.UserContext(), withStats))
}

// HandleSync runs a sync batch.
// @Summary Run Sync
// @Description Uploads pending tracks, every track when forceSync is set, or only the tracks listed in specificFiles.
// @Tags sync
// @Accept json
// @Produce json
// @Param request body RunRequest false "Sync options"
// @Success 200 {object} reconcile.SyncResult
// @Failure 400 {object} map[string]string "Malformed request"
// @Failure 503 {object} reconcile.SyncResult "Object store unreachable, partial result"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req RunRequest
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			l.Warn("Malformed sync request", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
		}
	}
	if req.SpecificFiles != nil && len(req.SpecificFiles) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": reconcile.ErrNoFiles.Error()})
	}

	result, err := h.service.run(c.UserContext(), l, req, nil)
	switch {
	case err == nil:
		return c.JSON(result)
	case errors.Is(err, reconcile.ErrNoFiles):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case reconcile.IsStructural(err) && result != nil:
		return c.Status(fiber.StatusServiceUnavailable).JSON(result)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// HandleClearErrors clears recorded sync errors.
// @Summary Clear Sync Errors
// @Description Clears the recorded errors of the listed tracks, or of all tracks when no list is given.
// @Tags sync
// @Accept json
// @Produce json
// @Param request body ClearRequest false "Tracks to clear"
// @Success 200 {object} map[string]interface{} "Cleared count or \"all\""
// @Failure 400 {object} map[string]string "Malformed request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/errors [delete]
func (h *Handler) HandleClearErrors(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ClearRequest
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
		}
	}

	n, err := h.service.ClearErrors(c.UserContext(), req.Files...)
	if err != nil {
		l.Error("Failed to clear sync errors", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(req.Files) == 0 {
		l.Info("Cleared all sync errors", zap.Int("cleared", n))
		return c.JSON(fiber.Map{"cleared": "all"})
	}
	l.Info("Cleared sync errors", zap.Strings("tracks", req.Files), zap.Int("cleared", n))
	return c.JSON(fiber.Map{"cleared": n})
}
