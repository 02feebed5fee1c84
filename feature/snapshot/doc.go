// Package snapshot exports the reconciled object graph to object storage.
//
// A snapshot is a point-in-time JSON serialization of the local collections
// (tenants, sites, racks, devices, alerts), uploaded to the configured
// bucket with a timestamped object name. It gives downstream consumers a
// stable artifact to read without touching the live store.
package snapshot
