// Package reconcile provides the generic entity synchronization engine.
//
// It reconciles a remote resource collection (devices, sites, tenants, alerts)
// into the local database: records are correlated by their stable remote id,
// created on first sight, updated in place when the remote last-modified
// timestamp changes, and deleted when a full remote fetch no longer returns
// them. Cross-entity references are re-resolved after every upsert against
// whatever target-kind data already exists locally.
//
// # Adapter
//
// Each entity kind plugs into the engine through the Adapter interface, which
// supplies the kind-specific operations (fetch, load, create, copy, link). The
// diff-and-apply algorithm itself lives in Engine and is shared by all kinds.
//
// # Orchestrator
//
// The Orchestrator coordinates passes across kinds: at most one pass is in
// flight per kind at any time (a second caller for the same kind waits), and
// SyncAll runs every registered kind concurrently with independent failure
// domains - one kind failing never cancels its siblings.
//
// # Commit semantics
//
// A pass for one kind executes inside a single database transaction. Either
// the whole diff for that kind commits or none of it does; there is no global
// transaction across kinds.
package reconcile
