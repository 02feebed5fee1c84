package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Omega-Networks/Pulse-sub003/core/storage"
	alertmodels "github.com/Omega-Networks/Pulse-sub003/feature/alerts/models"
	invmodels "github.com/Omega-Networks/Pulse-sub003/feature/inventory/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Snapshot is the exported form of the reconciled object graph.
type Snapshot struct {
	TakenAt time.Time           `json:"taken_at"`
	Tenants []invmodels.Tenant  `json:"tenants"`
	Sites   []invmodels.Site    `json:"sites"`
	Racks   []invmodels.Rack    `json:"racks"`
	Devices []invmodels.Device  `json:"devices"`
	Alerts  []alertmodels.Alert `json:"alerts"`
}

// Service serializes the local object graph and uploads it to object storage.
type Service struct {
	db     *gorm.DB
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new snapshot service.
func NewService(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{db: db, client: client, bucket: bucket, logger: logger}
}

// Export serializes the current graph and uploads it, returning the object
// name. The export reads whatever the store holds at call time; it does not
// trigger a synchronization.
func (s *Service) Export(ctx context.Context) (string, error) {
	snap := Snapshot{TakenAt: time.Now().UTC()}

	db := s.db.WithContext(ctx)
	if err := db.Order("id").Find(&snap.Tenants).Error; err != nil {
		return "", fmt.Errorf("failed to load tenants: %w", err)
	}
	if err := db.Order("id").Find(&snap.Sites).Error; err != nil {
		return "", fmt.Errorf("failed to load sites: %w", err)
	}
	if err := db.Order("id").Find(&snap.Racks).Error; err != nil {
		return "", fmt.Errorf("failed to load racks: %w", err)
	}
	if err := db.Order("id").Find(&snap.Devices).Error; err != nil {
		return "", fmt.Errorf("failed to load devices: %w", err)
	}
	if err := db.Order("id").Find(&snap.Alerts).Error; err != nil {
		return "", fmt.Errorf("failed to load alerts: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}

	objectName := "inventory-" + snap.TakenAt.Format("20060102T150405Z") + ".json"
	_, err = s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot: %w", err)
	}

	s.logger.Info("Snapshot exported",
		zap.String("object", objectName),
		zap.Int("devices", len(snap.Devices)),
		zap.Int("alerts", len(snap.Alerts)))

	return objectName, nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}
