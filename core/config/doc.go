// Package config provides configuration management for the synchronization
// service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: local store settings (sqlite path or MySQL connection details)
//   - Storage: S3/MinIO credentials and the snapshot bucket
//   - Log: Logging level and format
//   - NetBox: asset-management API endpoint and token
//   - Zabbix: monitoring API endpoint and credentials
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
