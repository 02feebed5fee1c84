package inventory

import (
	"context"
	"fmt"

	"github.com/Omega-Networks/Pulse-sub003/core/reconcile"
	"github.com/Omega-Networks/Pulse-sub003/feature/inventory/models"
	"github.com/Omega-Networks/Pulse-sub003/feature/inventory/netbox"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service exposes inventory synchronization and read access to the local
// object graph.
type Service struct {
	db           *gorm.DB
	client       *netbox.Client
	orchestrator *reconcile.Orchestrator
	logger       *zap.Logger
}

// NewService creates the inventory service and registers its adapters.
func NewService(db *gorm.DB, client *netbox.Client, orchestrator *reconcile.Orchestrator, logger *zap.Logger) *Service {
	RegisterAdapters(orchestrator, client)
	return &Service{
		db:           db,
		client:       client,
		orchestrator: orchestrator,
		logger:       logger,
	}
}

// Migrate creates or updates the local schema for every inventory model.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(models.All()...)
}

// SyncAll runs a full fetch-and-reconcile batch across every registered kind.
func (s *Service) SyncAll(ctx context.Context) *reconcile.Summary {
	return s.orchestrator.SyncAll(ctx)
}

// SyncKind runs one full pass for a single kind.
func (s *Service) SyncKind(ctx context.Context, kind reconcile.Kind) (*reconcile.Outcome, error) {
	return s.orchestrator.Sync(ctx, kind, nil)
}

// Status reports which kinds currently have a pass in flight.
func (s *Service) Status() map[reconcile.Kind]bool {
	status := make(map[reconcile.Kind]bool)
	for _, kind := range s.orchestrator.Kinds() {
		status[kind] = s.orchestrator.Active(kind)
	}
	return status
}

// Devices returns the local device collection with references resolved.
func (s *Service) Devices(ctx context.Context) ([]models.Device, error) {
	var devices []models.Device
	err := s.db.WithContext(ctx).
		Preload("Site").Preload("Rack").Preload("Role").
		Preload("DeviceType").Preload("Tenant").
		Order("id").Find(&devices).Error
	return devices, err
}

// Sites returns the local site collection with references resolved.
func (s *Service) Sites(ctx context.Context) ([]models.Site, error) {
	var sites []models.Site
	err := s.db.WithContext(ctx).
		Preload("Region").Preload("Group").Preload("Tenant").
		Order("id").Find(&sites).Error
	return sites, err
}

// UpdateDevice pushes a user edit for one device to the remote API and
// reconciles the response back into the local store. The one-element record
// list bypasses stale pruning, so no sibling device is ever deleted by a
// write-back.
func (s *Service) UpdateDevice(ctx context.Context, id int64, patch map[string]any) (*models.Device, error) {
	rec, err := s.client.UpdateDevice(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("remote update of device %d: %w", id, err)
	}

	if _, err := s.orchestrator.Sync(ctx, KindDevice, []reconcile.Record{rec}); err != nil {
		return nil, err
	}

	var device models.Device
	if err := s.db.WithContext(ctx).First(&device, id).Error; err != nil {
		return nil, err
	}

	s.logger.Info("Device write-back reconciled", zap.Int64("id", id))

	return &device, nil
}
