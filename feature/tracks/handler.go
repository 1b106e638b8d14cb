package tracks

import (
	"net/url"

	"track-manager/core/assets"
	"track-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for tracks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the tracks routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/tracks")
	group.Get("/", h.HandleList)
	group.Get("/:name/location", h.HandleLocate)
	group.Get("/:name/playback", h.HandlePlayback)
}

// HandleList returns the local inventory.
// @Summary List Tracks
// @Description Lists the audio files found in the local library.
// @Tags tracks
// @Produce json
// @Success 200 {array} assets.AssetRecord
// @Router /tracks [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.List(c.UserContext()))
}

// HandleLocate reports where a track lives.
// @Summary Locate Track
// @Description Reports whether a track exists locally, remotely or both, and which copy is primary.
// @Tags tracks
// @Produce json
// @Param name path string true "Track file name"
// @Success 200 {object} assets.TrackLocation
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /tracks/{name}/location [get]
func (h *Handler) HandleLocate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name, err := trackName(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid track name"})
	}

	loc, err := h.service.Locate(c.UserContext(), name)
	if err != nil {
		return h.fail(c, l, name, err)
	}
	return c.JSON(loc)
}

// HandlePlayback resolves the playback URL of a track.
// @Summary Track Playback URL
// @Description Returns a local media URL or a presigned object store URL. With redirect=true the client is redirected.
// @Tags tracks
// @Produce json
// @Param name path string true "Track file name"
// @Param redirect query boolean false "Redirect to the URL"
// @Success 200 {object} map[string]string "Playback URL"
// @Success 302 "Redirect"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /tracks/{name}/playback [get]
func (h *Handler) HandlePlayback(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name, err := trackName(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid track name"})
	}

	u, err := h.service.PlaybackURL(c.UserContext(), name)
	if err != nil {
		return h.fail(c, l, name, err)
	}

	if c.QueryBool("redirect", false) {
		return c.Redirect(u, fiber.StatusFound)
	}
	return c.JSON(fiber.Map{"name": name, "url": u})
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, name string, err error) error {
	if assets.IsNotFound(err) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error(), "name": name})
	}
	l.Error("Track lookup failed", zap.String("name", name), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func trackName(c *fiber.Ctx) (string, error) {
	return url.PathUnescape(c.Params("name"))
}
