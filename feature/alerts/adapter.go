package alerts

import (
	"context"
	"errors"

	"github.com/Omega-Networks/Pulse-sub003/core/reconcile"
	"github.com/Omega-Networks/Pulse-sub003/feature/alerts/models"
	"github.com/Omega-Networks/Pulse-sub003/feature/alerts/zabbix"
	inventory "github.com/Omega-Networks/Pulse-sub003/feature/inventory/models"

	"gorm.io/gorm"
)

// KindAlert is the entity kind for monitoring problems.
const KindAlert reconcile.Kind = "alert"

// alertAdapter wires the monitoring problem collection into the engine.
// A full problem.get fetch drives pruning, so problems the monitoring
// service no longer reports disappear locally.
type alertAdapter struct {
	client *zabbix.Client
}

func (a *alertAdapter) Kind() reconcile.Kind { return KindAlert }

func (a *alertAdapter) Fetch(ctx context.Context) ([]reconcile.Record, error) {
	return a.client.Problems(ctx)
}

func (a *alertAdapter) LoadExisting(tx *gorm.DB) (map[int64]reconcile.Record, error) {
	var rows []*models.Alert
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	existing := make(map[int64]reconcile.Record, len(rows))
	for _, row := range rows {
		existing[row.ID] = row
	}
	return existing, nil
}

func (a *alertAdapter) NewLocal(rec reconcile.Record) reconcile.Record {
	return &models.Alert{ID: rec.ExternalID()}
}

func (a *alertAdapter) CopyFields(local, rec reconcile.Record) {
	m, r := local.(*models.Alert), rec.(*zabbix.ProblemRecord)
	m.Name = r.Name
	m.Severity = r.Severity
	m.Acknowledged = r.Acknowledged != 0
	m.HostID = r.HostID()
	m.StartedAt = r.Modified()
	m.LastUpdated = r.Modified()
}

// LinkRelations resolves the affected device through its monitoring host id
// rather than a primary-key lookup; the two services do not share ids. A
// device that has not synced yet leaves the reference unset.
func (a *alertAdapter) LinkRelations(tx *gorm.DB, local, rec reconcile.Record) error {
	m, r := local.(*models.Alert), rec.(*zabbix.ProblemRecord)

	hostID := r.HostID()
	if hostID == 0 {
		m.DeviceID = nil
		return nil
	}

	var device inventory.Device
	err := tx.Select("id").Where("monitoring_id = ?", hostID).First(&device).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	m.DeviceID = &device.ID
	return nil
}
