package inventory

import (
	"context"

	"github.com/Omega-Networks/Pulse-sub003/core/reconcile"
	"github.com/Omega-Networks/Pulse-sub003/feature/inventory/models"
	"github.com/Omega-Networks/Pulse-sub003/feature/inventory/netbox"

	"gorm.io/gorm"
)

// Entity kinds reconciled by this feature, in dependency order: kinds that
// others reference sync first so references resolve on the first cycle.
// A violated ordering is tolerated and heals on the next pass.
const (
	KindTenantGroup reconcile.Kind = "tenant-group"
	KindTenant      reconcile.Kind = "tenant"
	KindRegion      reconcile.Kind = "region"
	KindSiteGroup   reconcile.Kind = "site-group"
	KindSite        reconcile.Kind = "site"
	KindRack        reconcile.Kind = "rack"
	KindDeviceRole  reconcile.Kind = "device-role"
	KindDeviceType  reconcile.Kind = "device-type"
	KindDevice      reconcile.Kind = "device"
)

// RegisterAdapters registers every inventory kind with the orchestrator.
func RegisterAdapters(o *reconcile.Orchestrator, client *netbox.Client) {
	o.Register(&tenantGroupAdapter{client: client})
	o.Register(&tenantAdapter{client: client})
	o.Register(&regionAdapter{client: client})
	o.Register(&siteGroupAdapter{client: client})
	o.Register(&siteAdapter{client: client})
	o.Register(&rackAdapter{client: client})
	o.Register(&deviceRoleAdapter{client: client})
	o.Register(&deviceTypeAdapter{client: client})
	o.Register(&deviceAdapter{client: client})
}

// loadExisting loads the full local collection of one model keyed by id.
func loadExisting[T any, PT interface {
	reconcile.Record
	*T
}](tx *gorm.DB) (map[int64]reconcile.Record, error) {
	var rows []PT
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	existing := make(map[int64]reconcile.Record, len(rows))
	for _, row := range rows {
		existing[row.ExternalID()] = row
	}
	return existing, nil
}

type tenantGroupAdapter struct{ client *netbox.Client }

func (a *tenantGroupAdapter) Kind() reconcile.Kind { return KindTenantGroup }

func (a *tenantGroupAdapter) Fetch(ctx context.Context) ([]reconcile.Record, error) {
	return a.client.TenantGroups(ctx)
}

func (a *tenantGroupAdapter) LoadExisting(tx *gorm.DB) (map[int64]reconcile.Record, error) {
	return loadExisting[models.TenantGroup](tx)
}

func (a *tenantGroupAdapter) NewLocal(rec reconcile.Record) reconcile.Record {
	return &models.TenantGroup{ID: rec.ExternalID()}
}

func (a *tenantGroupAdapter) CopyFields(local, rec reconcile.Record) {
	m, r := local.(*models.TenantGroup), rec.(*netbox.TenantGroupRecord)
	m.Name = r.Name
	m.Slug = r.Slug
	m.Description = r.Description
	m.LastUpdated = r.LastUpdated
}

func (a *tenantGroupAdapter) LinkRelations(tx *gorm.DB, local, rec reconcile.Record) error {
	m, r := local.(*models.TenantGroup), rec.(*netbox.TenantGroupRecord)

	var err error
	m.ParentID, err = reconcile.ResolveRef[models.TenantGroup](tx, r.Parent.FK(), m.ParentID)
	return err
}

type tenantAdapter struct{ client *netbox.Client }

func (a *tenantAdapter) Kind() reconcile.Kind { return KindTenant }

func (a *tenantAdapter) Fetch(ctx context.Context) ([]reconcile.Record, error) {
	return a.client.Tenants(ctx)
}

func (a *tenantAdapter) LoadExisting(tx *gorm.DB) (map[int64]reconcile.Record, error) {
	return loadExisting[models.Tenant](tx)
}

func (a *tenantAdapter) NewLocal(rec reconcile.Record) reconcile.Record {
	return &models.Tenant{ID: rec.ExternalID()}
}

func (a *tenantAdapter) CopyFields(local, rec reconcile.Record) {
	m, r := local.(*models.Tenant), rec.(*netbox.TenantRecord)
	m.Name = r.Name
	m.Slug = r.Slug
	m.Description = r.Description
	m.LastUpdated = r.LastUpdated
}

func (a *tenantAdapter) LinkRelations(tx *gorm.DB, local, rec reconcile.Record) error {
	m, r := local.(*models.Tenant), rec.(*netbox.TenantRecord)

	var err error
	m.GroupID, err = reconcile.ResolveRef[models.TenantGroup](tx, r.Group.FK(), m.GroupID)
	return err
}

type regionAdapter struct{ client *netbox.Client }

func (a *regionAdapter) Kind() reconcile.Kind { return KindRegion }

func (a *regionAdapter) Fetch(ctx context.Context) ([]reconcile.Record, error) {
	return a.client.Regions(ctx)
}

func (a *regionAdapter) LoadExisting(tx *gorm.DB) (map[int64]reconcile.Record, error) {
	return loadExisting[models.Region](tx)
}

func (a *regionAdapter) NewLocal(rec reconcile.Record) reconcile.Record {
	return &models.Region{ID: rec.ExternalID()}
}

func (a *regionAdapter) CopyFields(local, rec reconcile.Record) {
	m, r := local.(*models.Region), rec.(*netbox.RegionRecord)
	m.Name = r.Name
	m.Slug = r.Slug
	m.Description = r.Description
	m.LastUpdated = r.LastUpdated
}

func (a *regionAdapter) LinkRelations(tx *gorm.DB, local, rec reconcile.Record) error {
	m, r := local.(*models.Region), rec.(*netbox.RegionRecord)

	var err error
	m.ParentID, err = reconcile.ResolveRef[models.Region](tx, r.Parent.FK(), m.ParentID)
	return err
}

type siteGroupAdapter struct{ client *netbox.Client }

func (a *siteGroupAdapter) Kind() reconcile.Kind { return KindSiteGroup }

func (a *siteGroupAdapter) Fetch(ctx context.Context) ([]reconcile.Record, error) {
	return a.client.SiteGroups(ctx)
}

func (a *siteGroupAdapter) LoadExisting(tx *gorm.DB) (map[int64]reconcile.Record, error) {
	return loadExisting[models.SiteGroup](tx)
}

func (a *siteGroupAdapter) NewLocal(rec reconcile.Record) reconcile.Record {
	return &models.SiteGroup{ID: rec.ExternalID()}
}

func (a *siteGroupAdapter) CopyFields(local, rec reconcile.Record) {
	m, r := local.(*models.SiteGroup), rec.(*netbox.SiteGroupRecord)
	m.Name = r.Name
	m.Slug = r.Slug
	m.Description = r.Description
	m.LastUpdated = r.LastUpdated
}

func (a *siteGroupAdapter) LinkRelations(tx *gorm.DB, local, rec reconcile.Record) error {
	m, r := local.(*models.SiteGroup), rec.(*netbox.SiteGroupRecord)

	var err error
	m.ParentID, err = reconcile.ResolveRef[models.SiteGroup](tx, r.Parent.FK(), m.ParentID)
	return err
}

type siteAdapter struct{ client *netbox.Client }

func (a *siteAdapter) Kind() reconcile.Kind { return KindSite }

func (a *siteAdapter) Fetch(ctx context.Context) ([]reconcile.Record, error) {
	return a.client.Sites(ctx)
}

func (a *siteAdapter) LoadExisting(tx *gorm.DB) (map[int64]reconcile.Record, error) {
	return loadExisting[models.Site](tx)
}

func (a *siteAdapter) NewLocal(rec reconcile.Record) reconcile.Record {
	return &models.Site{ID: rec.ExternalID()}
}

func (a *siteAdapter) CopyFields(local, rec reconcile.Record) {
	m, r := local.(*models.Site), rec.(*netbox.SiteRecord)
	m.Name = r.Name
	m.Slug = r.Slug
	m.Status = r.Status.Value
	m.Description = r.Description
	m.PhysicalAddress = r.PhysicalAddress
	m.Latitude = 0
	m.Longitude = 0
	if r.Latitude != nil {
		m.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		m.Longitude = *r.Longitude
	}
	m.LastUpdated = r.LastUpdated
}

func (a *siteAdapter) LinkRelations(tx *gorm.DB, local, rec reconcile.Record) error {
	m, r := local.(*models.Site), rec.(*netbox.SiteRecord)

	var err error
	if m.RegionID, err = reconcile.ResolveRef[models.Region](tx, r.Region.FK(), m.RegionID); err != nil {
		return err
	}
	if m.GroupID, err = reconcile.ResolveRef[models.SiteGroup](tx, r.Group.FK(), m.GroupID); err != nil {
		return err
	}
	m.TenantID, err = reconcile.ResolveRef[models.Tenant](tx, r.Tenant.FK(), m.TenantID)
	return err
}

type rackAdapter struct{ client *netbox.Client }

func (a *rackAdapter) Kind() reconcile.Kind { return KindRack }

func (a *rackAdapter) Fetch(ctx context.Context) ([]reconcile.Record, error) {
	return a.client.Racks(ctx)
}

func (a *rackAdapter) LoadExisting(tx *gorm.DB) (map[int64]reconcile.Record, error) {
	return loadExisting[models.Rack](tx)
}

func (a *rackAdapter) NewLocal(rec reconcile.Record) reconcile.Record {
	return &models.Rack{ID: rec.ExternalID()}
}

func (a *rackAdapter) CopyFields(local, rec reconcile.Record) {
	m, r := local.(*models.Rack), rec.(*netbox.RackRecord)
	m.Name = r.Name
	m.Status = r.Status.Value
	m.UHeight = r.UHeight
	m.LastUpdated = r.LastUpdated
}

func (a *rackAdapter) LinkRelations(tx *gorm.DB, local, rec reconcile.Record) error {
	m, r := local.(*models.Rack), rec.(*netbox.RackRecord)

	var err error
	if m.SiteID, err = reconcile.ResolveRef[models.Site](tx, r.Site.FK(), m.SiteID); err != nil {
		return err
	}
	m.TenantID, err = reconcile.ResolveRef[models.Tenant](tx, r.Tenant.FK(), m.TenantID)
	return err
}

type deviceRoleAdapter struct{ client *netbox.Client }

func (a *deviceRoleAdapter) Kind() reconcile.Kind { return KindDeviceRole }

func (a *deviceRoleAdapter) Fetch(ctx context.Context) ([]reconcile.Record, error) {
	return a.client.DeviceRoles(ctx)
}

func (a *deviceRoleAdapter) LoadExisting(tx *gorm.DB) (map[int64]reconcile.Record, error) {
	return loadExisting[models.DeviceRole](tx)
}

func (a *deviceRoleAdapter) NewLocal(rec reconcile.Record) reconcile.Record {
	return &models.DeviceRole{ID: rec.ExternalID()}
}

func (a *deviceRoleAdapter) CopyFields(local, rec reconcile.Record) {
	m, r := local.(*models.DeviceRole), rec.(*netbox.DeviceRoleRecord)
	m.Name = r.Name
	m.Slug = r.Slug
	m.Color = r.Color
	m.LastUpdated = r.LastUpdated
}

func (a *deviceRoleAdapter) LinkRelations(*gorm.DB, reconcile.Record, reconcile.Record) error {
	// Device roles reference nothing.
	return nil
}

type deviceTypeAdapter struct{ client *netbox.Client }

func (a *deviceTypeAdapter) Kind() reconcile.Kind { return KindDeviceType }

func (a *deviceTypeAdapter) Fetch(ctx context.Context) ([]reconcile.Record, error) {
	return a.client.DeviceTypes(ctx)
}

func (a *deviceTypeAdapter) LoadExisting(tx *gorm.DB) (map[int64]reconcile.Record, error) {
	return loadExisting[models.DeviceType](tx)
}

func (a *deviceTypeAdapter) NewLocal(rec reconcile.Record) reconcile.Record {
	return &models.DeviceType{ID: rec.ExternalID()}
}

func (a *deviceTypeAdapter) CopyFields(local, rec reconcile.Record) {
	m, r := local.(*models.DeviceType), rec.(*netbox.DeviceTypeRecord)
	m.Model = r.Model
	m.Slug = r.Slug
	m.Manufacturer = r.ManufacturerName()
	m.UHeight = r.UHeight
	m.LastUpdated = r.LastUpdated
}

func (a *deviceTypeAdapter) LinkRelations(*gorm.DB, reconcile.Record, reconcile.Record) error {
	// The manufacturer brief is flattened into a scalar; no local reference.
	return nil
}

type deviceAdapter struct{ client *netbox.Client }

func (a *deviceAdapter) Kind() reconcile.Kind { return KindDevice }

func (a *deviceAdapter) Fetch(ctx context.Context) ([]reconcile.Record, error) {
	return a.client.Devices(ctx)
}

func (a *deviceAdapter) LoadExisting(tx *gorm.DB) (map[int64]reconcile.Record, error) {
	return loadExisting[models.Device](tx)
}

func (a *deviceAdapter) NewLocal(rec reconcile.Record) reconcile.Record {
	return &models.Device{ID: rec.ExternalID()}
}

func (a *deviceAdapter) CopyFields(local, rec reconcile.Record) {
	m, r := local.(*models.Device), rec.(*netbox.DeviceRecord)
	m.Name = r.Name
	m.Status = r.Status.Value
	m.Serial = r.Serial
	m.AssetTag = r.AssetTag
	m.PrimaryIP4 = r.PrimaryIP()
	m.Position = r.Position
	m.MonitoringID = r.CustomFields.MonitoringHostID
	m.LastUpdated = r.LastUpdated
}

func (a *deviceAdapter) LinkRelations(tx *gorm.DB, local, rec reconcile.Record) error {
	m, r := local.(*models.Device), rec.(*netbox.DeviceRecord)

	var err error
	if m.SiteID, err = reconcile.ResolveRef[models.Site](tx, r.Site.FK(), m.SiteID); err != nil {
		return err
	}
	if m.RackID, err = reconcile.ResolveRef[models.Rack](tx, r.Rack.FK(), m.RackID); err != nil {
		return err
	}
	if m.RoleID, err = reconcile.ResolveRef[models.DeviceRole](tx, r.Role.FK(), m.RoleID); err != nil {
		return err
	}
	if m.DeviceTypeID, err = reconcile.ResolveRef[models.DeviceType](tx, r.DeviceType.FK(), m.DeviceTypeID); err != nil {
		return err
	}
	m.TenantID, err = reconcile.ResolveRef[models.Tenant](tx, r.Tenant.FK(), m.TenantID)
	return err
}
