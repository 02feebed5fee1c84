package models

import "time"

// The local object graph mirrors the remote asset-management collections.
// Every model is primary-keyed by the remote id, so a record keeps its
// identity across reconciliation passes; references between models are
// stored as nullable id columns and resolved, never duplicated.

// TenantGroup groups tenants hierarchically.
type TenantGroup struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`

	ParentID *int64       `json:"parent_id"`
	Parent   *TenantGroup `gorm:"foreignKey:ParentID" json:"-"`

	LastUpdated time.Time `json:"last_updated"`
}

// Tenant represents one customer or organizational unit owning resources.
type Tenant struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`

	GroupID *int64       `json:"group_id"`
	Group   *TenantGroup `gorm:"foreignKey:GroupID" json:"-"`

	LastUpdated time.Time `json:"last_updated"`
}

// Region is a geographic grouping of sites.
type Region struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`

	ParentID *int64  `json:"parent_id"`
	Parent   *Region `gorm:"foreignKey:ParentID" json:"-"`

	LastUpdated time.Time `json:"last_updated"`
}

// SiteGroup is a functional grouping of sites, orthogonal to regions.
type SiteGroup struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`

	ParentID *int64     `json:"parent_id"`
	Parent   *SiteGroup `gorm:"foreignKey:ParentID" json:"-"`

	LastUpdated time.Time `json:"last_updated"`
}

// Site is a physical location housing racks and devices.
type Site struct {
	ID              int64   `gorm:"primaryKey" json:"id"`
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	Status          string  `json:"status"`
	Description     string  `json:"description"`
	PhysicalAddress string  `json:"physical_address"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`

	RegionID *int64     `json:"region_id"`
	Region   *Region    `gorm:"foreignKey:RegionID" json:"-"`
	GroupID  *int64     `json:"group_id"`
	Group    *SiteGroup `gorm:"foreignKey:GroupID" json:"-"`
	TenantID *int64     `json:"tenant_id"`
	Tenant   *Tenant    `gorm:"foreignKey:TenantID" json:"-"`

	LastUpdated time.Time `json:"last_updated"`
}

// Rack is a mounting frame within a site.
type Rack struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	UHeight int    `json:"u_height"`

	SiteID   *int64  `json:"site_id"`
	Site     *Site   `gorm:"foreignKey:SiteID" json:"-"`
	TenantID *int64  `json:"tenant_id"`
	Tenant   *Tenant `gorm:"foreignKey:TenantID" json:"-"`

	LastUpdated time.Time `json:"last_updated"`
}

// DeviceRole classifies what a device does (router, switch, camera, ...).
type DeviceRole struct {
	ID    int64  `gorm:"primaryKey" json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`

	LastUpdated time.Time `json:"last_updated"`
}

// DeviceType is a hardware model definition shared by many devices.
type DeviceType struct {
	ID           int64   `gorm:"primaryKey" json:"id"`
	Model        string  `json:"model"`
	Slug         string  `json:"slug"`
	Manufacturer string  `json:"manufacturer"`
	UHeight      float64 `json:"u_height"`

	LastUpdated time.Time `json:"last_updated"`
}

// Device is one piece of tracked equipment.
type Device struct {
	ID         int64    `gorm:"primaryKey" json:"id"`
	Name       string   `json:"name"`
	Status     string   `json:"status"`
	Serial     string   `json:"serial"`
	AssetTag   string   `json:"asset_tag"`
	PrimaryIP4 string   `json:"primary_ip4"`
	Position   *float64 `json:"position"`

	// MonitoringID is the monitoring service's host id for this device,
	// carried as a custom field on the remote record. Alerts link to
	// devices through it.
	MonitoringID int64 `gorm:"index" json:"monitoring_id"`

	SiteID       *int64      `json:"site_id"`
	Site         *Site       `gorm:"foreignKey:SiteID" json:"-"`
	RackID       *int64      `json:"rack_id"`
	Rack         *Rack       `gorm:"foreignKey:RackID" json:"-"`
	RoleID       *int64      `json:"role_id"`
	Role         *DeviceRole `gorm:"foreignKey:RoleID" json:"-"`
	DeviceTypeID *int64      `json:"device_type_id"`
	DeviceType   *DeviceType `gorm:"foreignKey:DeviceTypeID" json:"-"`
	TenantID     *int64      `json:"tenant_id"`
	Tenant       *Tenant     `gorm:"foreignKey:TenantID" json:"-"`

	LastUpdated time.Time `json:"last_updated"`
}

// ExternalID/Modified implement reconcile.Record for every model.

func (m *TenantGroup) ExternalID() int64    { return m.ID }
func (m *TenantGroup) Modified() time.Time  { return m.LastUpdated }
func (m *Tenant) ExternalID() int64         { return m.ID }
func (m *Tenant) Modified() time.Time       { return m.LastUpdated }
func (m *Region) ExternalID() int64         { return m.ID }
func (m *Region) Modified() time.Time       { return m.LastUpdated }
func (m *SiteGroup) ExternalID() int64      { return m.ID }
func (m *SiteGroup) Modified() time.Time    { return m.LastUpdated }
func (m *Site) ExternalID() int64           { return m.ID }
func (m *Site) Modified() time.Time         { return m.LastUpdated }
func (m *Rack) ExternalID() int64           { return m.ID }
func (m *Rack) Modified() time.Time         { return m.LastUpdated }
func (m *DeviceRole) ExternalID() int64     { return m.ID }
func (m *DeviceRole) Modified() time.Time   { return m.LastUpdated }
func (m *DeviceType) ExternalID() int64     { return m.ID }
func (m *DeviceType) Modified() time.Time   { return m.LastUpdated }
func (m *Device) ExternalID() int64         { return m.ID }
func (m *Device) Modified() time.Time       { return m.LastUpdated }

// All returns one zero value of every inventory model, in dependency order.
// Used for schema migration.
func All() []any {
	return []any{
		&TenantGroup{}, &Tenant{}, &Region{}, &SiteGroup{},
		&Site{}, &Rack{}, &DeviceRole{}, &DeviceType{}, &Device{},
	}
}
