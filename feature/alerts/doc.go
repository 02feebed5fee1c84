// Package alerts synchronizes active problems from the monitoring service
// into the local store and links them to inventory devices.
//
// The monitoring API speaks JSON-RPC 2.0; a session token from user.login is
// attached as a bearer credential to every subsequent call. The active
// problem collection is reconciled through the same `core/reconcile` engine
// as the inventory kinds, so a full fetch prunes problems the service no
// longer reports.
//
// Alerts reference devices through the device's monitoring host id. A
// problem arriving before its device has synced keeps the reference unset
// until a later pass resolves it.
package alerts
