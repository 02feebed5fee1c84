package reconcile

// Config holds background synchronization settings.
type Config struct {
	// IntervalMinutes is the period between automatic batch runs.
	// 0 disables background synchronization; syncs then only run on
	// request (HTTP or CLI).
	IntervalMinutes int `mapstructure:"interval_minutes" default:"0"`
}
