package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "pulse.db", cfg.Database.Path)
	assert.Equal(t, "snapshots", cfg.Storage.Bucket)

	// Remote services are unconfigured out of the box.
	assert.Empty(t, cfg.NetBox.BaseURL)
	assert.Empty(t, cfg.Zabbix.BaseURL)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("NETBOX_BASE_URL", "https://assets.example.com")
	t.Setenv("NETBOX_TOKEN", "abc123")
	t.Setenv("ZABBIX_BASE_URL", "https://monitoring.example.com")
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("NETBOX_EXCLUDE_DEVICE_ROLES", "patch-panel,cable-tray")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://assets.example.com", cfg.NetBox.BaseURL)
	assert.Equal(t, "abc123", cfg.NetBox.Token)
	assert.Equal(t, "https://monitoring.example.com", cfg.Zabbix.BaseURL)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "patch-panel,cable-tray", cfg.NetBox.ExcludeDeviceRoles)
}
