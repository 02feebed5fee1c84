package alerts

import (
	"github.com/Omega-Networks/Pulse-sub003/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for alerts.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the alert routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/alerts")
	group.Get("/", h.HandleListAlerts)
	group.Post("/sync", h.HandleSync)
}

// HandleListAlerts returns the active alerts, most severe first.
// @Summary List active alerts
// @Tags alerts
// @Produce json
// @Success 200 {array} models.Alert "Alerts"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /alerts [get]
func (h *Handler) HandleListAlerts(c *fiber.Ctx) error {
	alerts, err := h.service.Alerts(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Alert listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(alerts)
}

// HandleSync triggers one full alert synchronization pass.
// @Summary Synchronize alerts
// @Tags alerts
// @Produce json
// @Success 200 {object} reconcile.Outcome "Applied diff counts"
// @Failure 502 {object} map[string]string "Fetch or reconcile failure"
// @Router /alerts/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	outcome, err := h.service.Sync(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Alert synchronization failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(outcome)
}
