package alerts

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Omega-Networks/Pulse-sub003/core/reconcile"
	"github.com/Omega-Networks/Pulse-sub003/feature/alerts/models"
	"github.com/Omega-Networks/Pulse-sub003/feature/alerts/zabbix"
	inventory "github.com/Omega-Networks/Pulse-sub003/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAlertDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&inventory.Device{}, &models.Alert{}))
	return db
}

func problem(eventID int64, name string, hostID int64, clock int64) *zabbix.ProblemRecord {
	p := &zabbix.ProblemRecord{
		EventID:  eventID,
		Name:     name,
		Severity: 4,
		Clock:    clock,
	}
	if hostID != 0 {
		p.Hosts = []struct {
			HostID int64 `json:"hostid,string"`
		}{{HostID: hostID}}
	}
	return p
}

func TestAlertSync_LinksDeviceByMonitoringID(t *testing.T) {
	db := setupAlertDB(t, "alerts_link")
	engine := reconcile.NewEngine(db, zap.NewNop())

	require.NoError(t, db.Create(&inventory.Device{ID: 80, Name: "akl-sw-01", MonitoringID: 10084}).Error)

	records := []reconcile.Record{problem(101, "High CPU", 10084, 1750000000)}

	out, err := engine.Reconcile(context.Background(), &alertAdapter{}, records, true)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Created)

	var alert models.Alert
	require.NoError(t, db.First(&alert, 101).Error)
	assert.Equal(t, "High CPU", alert.Name)
	assert.Equal(t, int64(10084), alert.HostID)
	require.NotNil(t, alert.DeviceID, "alert must link to the device carrying its monitoring host id")
	assert.Equal(t, int64(80), *alert.DeviceID)
	assert.True(t, alert.StartedAt.Equal(time.Unix(1750000000, 0).UTC()))
}

func TestAlertSync_UnknownHostLeavesReferenceUnset(t *testing.T) {
	db := setupAlertDB(t, "alerts_unknown")
	engine := reconcile.NewEngine(db, zap.NewNop())

	records := []reconcile.Record{problem(101, "Orphan problem", 55555, 1750000000)}

	_, err := engine.Reconcile(context.Background(), &alertAdapter{}, records, true)
	require.NoError(t, err, "a host without a matching device is not an error")

	var alert models.Alert
	require.NoError(t, db.First(&alert, 101).Error)
	assert.Nil(t, alert.DeviceID)
	assert.Equal(t, int64(55555), alert.HostID)
}

func TestAlertSync_ResolvedProblemsArePruned(t *testing.T) {
	db := setupAlertDB(t, "alerts_prune")
	engine := reconcile.NewEngine(db, zap.NewNop())

	records := []reconcile.Record{
		problem(101, "High CPU", 0, 1750000000),
		problem(102, "Link down", 0, 1750000100),
	}

	_, err := engine.Reconcile(context.Background(), &alertAdapter{}, records, true)
	require.NoError(t, err)

	// Problem 101 recovers upstream and vanishes from problem.get.
	out, err := engine.Reconcile(context.Background(), &alertAdapter{}, records[1:], true)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Deleted)

	var count int64
	require.NoError(t, db.Model(&models.Alert{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAlertSync_AcknowledgementCopied(t *testing.T) {
	db := setupAlertDB(t, "alerts_ack")
	engine := reconcile.NewEngine(db, zap.NewNop())

	rec := problem(101, "High CPU", 0, 1750000000)
	rec.Acknowledged = 1

	_, err := engine.Reconcile(context.Background(), &alertAdapter{}, []reconcile.Record{rec}, true)
	require.NoError(t, err)

	var alert models.Alert
	require.NoError(t, db.First(&alert, 101).Error)
	assert.True(t, alert.Acknowledged)
}
