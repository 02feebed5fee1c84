package netbox

import "time"

// Property records: decoded snapshots of remote objects. Related objects
// arrive as nested briefs; only their numeric id matters for reconciliation,
// a nil ref means "no relation".

// Ref is a nested brief of a related object.
type Ref struct {
	ID int64 `json:"id"`
}

// FK returns the numeric foreign key of a ref, 0 when absent.
func (r *Ref) FK() int64 {
	if r == nil {
		return 0
	}
	return r.ID
}

// Status is the value/label pair the remote API uses for state fields.
type Status struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TenantGroupRecord is the remote snapshot of a tenant group.
type TenantGroupRecord struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Parent      *Ref      `json:"parent"`
	LastUpdated time.Time `json:"last_updated"`
}

// TenantRecord is the remote snapshot of a tenant.
type TenantRecord struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Group       *Ref      `json:"group"`
	LastUpdated time.Time `json:"last_updated"`
}

// RegionRecord is the remote snapshot of a region.
type RegionRecord struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Parent      *Ref      `json:"parent"`
	LastUpdated time.Time `json:"last_updated"`
}

// SiteGroupRecord is the remote snapshot of a site group.
type SiteGroupRecord struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Parent      *Ref      `json:"parent"`
	LastUpdated time.Time `json:"last_updated"`
}

// SiteRecord is the remote snapshot of a site.
type SiteRecord struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Status          Status    `json:"status"`
	Description     string    `json:"description"`
	PhysicalAddress string    `json:"physical_address"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	Region          *Ref      `json:"region"`
	Group           *Ref      `json:"group"`
	Tenant          *Ref      `json:"tenant"`
	LastUpdated     time.Time `json:"last_updated"`
}

// RackRecord is the remote snapshot of a rack.
type RackRecord struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Status      Status    `json:"status"`
	UHeight     int       `json:"u_height"`
	Site        *Ref      `json:"site"`
	Tenant      *Ref      `json:"tenant"`
	LastUpdated time.Time `json:"last_updated"`
}

// DeviceRoleRecord is the remote snapshot of a device role.
type DeviceRoleRecord struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Color       string    `json:"color"`
	LastUpdated time.Time `json:"last_updated"`
}

// DeviceTypeRecord is the remote snapshot of a device type.
type DeviceTypeRecord struct {
	ID           int64  `json:"id"`
	Model        string `json:"model"`
	Slug         string `json:"slug"`
	Manufacturer *struct {
		Name string `json:"name"`
	} `json:"manufacturer"`
	UHeight     float64   `json:"u_height"`
	LastUpdated time.Time `json:"last_updated"`
}

// ManufacturerName returns the manufacturer brief's name, "" when absent.
func (r *DeviceTypeRecord) ManufacturerName() string {
	if r.Manufacturer == nil {
		return ""
	}
	return r.Manufacturer.Name
}

// DeviceRecord is the remote snapshot of a device.
type DeviceRecord struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Status     Status `json:"status"`
	Serial     string `json:"serial"`
	AssetTag   string `json:"asset_tag"`
	PrimaryIP4 *struct {
		Address string `json:"address"`
	} `json:"primary_ip4"`
	Position     *float64 `json:"position"`
	Site         *Ref     `json:"site"`
	Rack         *Ref     `json:"rack"`
	Role         *Ref     `json:"role"`
	DeviceType   *Ref     `json:"device_type"`
	Tenant       *Ref     `json:"tenant"`
	CustomFields struct {
		MonitoringHostID int64 `json:"monitoring_host_id"`
	} `json:"custom_fields"`
	LastUpdated time.Time `json:"last_updated"`
}

// PrimaryIP returns the device's primary IPv4 address with prefix, "" if unset.
func (r *DeviceRecord) PrimaryIP() string {
	if r.PrimaryIP4 == nil {
		return ""
	}
	return r.PrimaryIP4.Address
}

func (r *TenantGroupRecord) ExternalID() int64   { return r.ID }
func (r *TenantGroupRecord) Modified() time.Time { return r.LastUpdated }
func (r *TenantRecord) ExternalID() int64        { return r.ID }
func (r *TenantRecord) Modified() time.Time      { return r.LastUpdated }
func (r *RegionRecord) ExternalID() int64        { return r.ID }
func (r *RegionRecord) Modified() time.Time      { return r.LastUpdated }
func (r *SiteGroupRecord) ExternalID() int64     { return r.ID }
func (r *SiteGroupRecord) Modified() time.Time   { return r.LastUpdated }
func (r *SiteRecord) ExternalID() int64          { return r.ID }
func (r *SiteRecord) Modified() time.Time        { return r.LastUpdated }
func (r *RackRecord) ExternalID() int64          { return r.ID }
func (r *RackRecord) Modified() time.Time        { return r.LastUpdated }
func (r *DeviceRoleRecord) ExternalID() int64    { return r.ID }
func (r *DeviceRoleRecord) Modified() time.Time  { return r.LastUpdated }
func (r *DeviceTypeRecord) ExternalID() int64    { return r.ID }
func (r *DeviceTypeRecord) Modified() time.Time  { return r.LastUpdated }
func (r *DeviceRecord) ExternalID() int64        { return r.ID }
func (r *DeviceRecord) Modified() time.Time      { return r.LastUpdated }
