package alerts

import (
	"github.com/Omega-Networks/Pulse-sub003/core/reconcile"
	"github.com/Omega-Networks/Pulse-sub003/feature/alerts/zabbix"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the alerts feature.
func NewFeature(db *gorm.DB, client *zabbix.Client, orchestrator *reconcile.Orchestrator, logger *zap.Logger) *Feature {
	svc := NewService(db, client, orchestrator, logger)
	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h}
}

// Service returns the underlying service, for CLI use.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "alerts"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
