package inventory

import (
	"errors"

	"github.com/Omega-Networks/Pulse-sub003/core/logger"
	"github.com/Omega-Networks/Pulse-sub003/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the inventory feature.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Post("/sync", h.HandleSyncAll)
	group.Post("/sync/:kind", h.HandleSyncKind)
	group.Get("/status", h.HandleStatus)
	group.Get("/devices", h.HandleListDevices)
	group.Get("/sites", h.HandleListSites)
	group.Patch("/devices/:id", h.HandleUpdateDevice)
}

// HandleSyncAll triggers a batch synchronization of all inventory kinds.
// @Summary Synchronize all inventory kinds
// @Description Fetches every remote collection and reconciles it locally. Kinds run concurrently; one kind failing does not abort the others.
// @Tags inventory
// @Produce json
// @Success 200 {object} reconcile.Summary "Per-kind results"
// @Router /inventory/sync [post]
func (h *Handler) HandleSyncAll(c *fiber.Ctx) error {
	summary := h.service.SyncAll(c.Context())
	return c.JSON(summary)
}

// HandleSyncKind triggers a full pass for one kind.
// @Summary Synchronize one inventory kind
// @Tags inventory
// @Produce json
// @Param kind path string true "Entity kind (e.g. 'device', 'site')"
// @Success 200 {object} reconcile.Outcome "Applied diff counts"
// @Failure 404 {object} map[string]string "Unknown kind"
// @Failure 502 {object} map[string]string "Fetch or reconcile failure"
// @Router /inventory/sync/{kind} [post]
func (h *Handler) HandleSyncKind(c *fiber.Ctx) error {
	kind := reconcile.Kind(c.Params("kind"))
	l := logger.WithRayID(h.logger, c)

	outcome, err := h.service.SyncKind(c.Context(), kind)
	if err != nil {
		l.Error("Kind synchronization failed", zap.String("kind", string(kind)), zap.Error(err))
		status := fiber.StatusBadGateway
		if errors.Is(err, reconcile.ErrUnknownKind) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(outcome)
}

// HandleStatus reports which kinds currently have a pass in flight.
// @Summary Synchronization status
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]bool "Active flags per kind"
// @Router /inventory/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandleListDevices returns the local device collection.
// @Summary List devices
// @Tags inventory
// @Produce json
// @Success 200 {array} models.Device "Devices"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/devices [get]
func (h *Handler) HandleListDevices(c *fiber.Ctx) error {
	devices, err := h.service.Devices(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Device listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(devices)
}

// HandleListSites returns the local site collection.
// @Summary List sites
// @Tags inventory
// @Produce json
// @Success 200 {array} models.Site "Sites"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/sites [get]
func (h *Handler) HandleListSites(c *fiber.Ctx) error {
	sites, err := h.service.Sites(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Site listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(sites)
}

// HandleUpdateDevice pushes a single-device edit to the remote API and
// reconciles the response back locally.
// @Summary Update a device
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Device id"
// @Param patch body map[string]any true "Fields to update"
// @Success 200 {object} models.Device "Updated device"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Remote update failed"
// @Router /inventory/devices/{id} [patch]
func (h *Handler) HandleUpdateDevice(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid device id"})
	}

	var patch map[string]any
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	device, err := h.service.UpdateDevice(c.Context(), int64(id), patch)
	if err != nil {
		l.Error("Device update failed", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(device)
}
