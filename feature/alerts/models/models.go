package models

import (
	"time"

	inventory "github.com/Omega-Networks/Pulse-sub003/feature/inventory/models"
)

// Alert is the local record of one active problem reported by the monitoring
// service, keyed by the remote event id. It references the affected device
// through the device's monitoring host id; the reference stays unset until
// the device kind has synced.
type Alert struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	Name         string `json:"name"`
	Severity     int    `json:"severity"`
	Acknowledged bool   `json:"acknowledged"`

	// HostID is the monitoring service's id of the affected host.
	HostID int64 `gorm:"index" json:"host_id"`

	DeviceID *int64            `json:"device_id"`
	Device   *inventory.Device `gorm:"foreignKey:DeviceID" json:"-"`

	StartedAt   time.Time `json:"started_at"`
	LastUpdated time.Time `json:"last_updated"`
}

// ExternalID returns the remote event id.
func (a *Alert) ExternalID() int64 { return a.ID }

// Modified returns the remote timestamp of the record.
func (a *Alert) Modified() time.Time { return a.LastUpdated }
