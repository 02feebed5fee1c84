package snapshot

import (
	"github.com/Omega-Networks/Pulse-sub003/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for snapshots.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/snapshot")
	group.Post("/export", h.HandleExport)
}

// HandleExport serializes the reconciled graph and uploads it.
// @Summary Export a snapshot
// @Description Serializes the local object graph to JSON and uploads it to object storage.
// @Tags snapshot
// @Produce json
// @Success 200 {object} map[string]string "Uploaded object name"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshot/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	object, err := h.service.Export(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Snapshot export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"object": object})
}
