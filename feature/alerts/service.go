package alerts

import (
	"context"

	"github.com/Omega-Networks/Pulse-sub003/core/reconcile"
	"github.com/Omega-Networks/Pulse-sub003/feature/alerts/models"
	"github.com/Omega-Networks/Pulse-sub003/feature/alerts/zabbix"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service exposes alert synchronization and read access to active alerts.
type Service struct {
	db           *gorm.DB
	client       *zabbix.Client
	orchestrator *reconcile.Orchestrator
	logger       *zap.Logger
}

// NewService creates the alerts service and registers its adapter, making
// the alert kind part of the batch synchronization.
func NewService(db *gorm.DB, client *zabbix.Client, orchestrator *reconcile.Orchestrator, logger *zap.Logger) *Service {
	orchestrator.Register(&alertAdapter{client: client})
	return &Service{
		db:           db,
		client:       client,
		orchestrator: orchestrator,
		logger:       logger,
	}
}

// Migrate creates or updates the local alert schema.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&models.Alert{})
}

// Sync runs one full fetch-and-reconcile pass over the active problems.
func (s *Service) Sync(ctx context.Context) (*reconcile.Outcome, error) {
	return s.orchestrator.Sync(ctx, KindAlert, nil)
}

// Alerts returns the local alert collection, most severe first, with device
// references resolved where the device kind has synced.
func (s *Service) Alerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	err := s.db.WithContext(ctx).
		Preload("Device").
		Order("severity DESC, started_at DESC").
		Find(&alerts).Error
	return alerts, err
}
