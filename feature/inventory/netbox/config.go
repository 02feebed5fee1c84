package netbox

// Config holds connection settings for the asset-management API.
type Config struct {
	// BaseURL is the root of the API, e.g. https://netbox.example.com.
	// Empty means the service is not configured; clients refuse to fetch.
	BaseURL string `mapstructure:"base_url" default:""`
	// Token is the API token. Empty degrades to unauthenticated requests.
	Token string `mapstructure:"token" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// ExcludeDeviceRoles is a comma-separated list of role slugs whose
	// devices are excluded from the fetch (field filter).
	ExcludeDeviceRoles string `mapstructure:"exclude_device_roles" default:""`
}
