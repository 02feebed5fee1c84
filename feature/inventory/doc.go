// Package inventory synchronizes the asset-management service's resource
// collections into the local object graph.
//
// Tenants, sites, racks, device roles, device types and devices are fetched
// from the remote REST API (paginated), diffed against the local collections
// by their stable remote id, and reconciled through the `core/reconcile`
// engine. References between kinds (a device's site, rack, role, type and
// tenant) are re-resolved after every upsert against the local collections.
//
// # Components
//
//   - netbox.Client: authenticated, paginated fetch and single-record writes.
//   - adapters: one reconcile.Adapter per entity kind.
//   - Service: sync orchestration entry points, read access, device write-back.
//   - Handler: HTTP endpoints for triggering syncs and reading the graph.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST  /inventory/sync           : batch synchronization of all kinds
//   - POST  /inventory/sync/:kind     : one kind
//   - GET   /inventory/status         : in-flight flags per kind
//   - GET   /inventory/devices        : local devices with resolved references
//   - GET   /inventory/sites          : local sites with resolved references
//   - PATCH /inventory/devices/:id    : remote write-back of a device edit
package inventory
