package zabbix

// Config holds connection settings for the monitoring API.
type Config struct {
	// BaseURL is the root of the monitoring service, e.g.
	// https://zabbix.example.com. Empty means not configured.
	BaseURL string `mapstructure:"base_url" default:""`
	// Username authenticates the initial login call.
	Username string `mapstructure:"username" default:""`
	// Password authenticates the initial login call.
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
