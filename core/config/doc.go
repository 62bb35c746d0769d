// Package config provides configuration management for the Inventory Manager.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from `default` struct tags on each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, environment, snapshot cache TTL)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and the report bucket
//   - Log: Logging level and format
//   - Reorder: service-level z-score and default lead time
//
// Environment variables map to nested keys by replacing dots with underscores,
// e.g. REORDER_SERVICE_LEVEL sets reorder.service_level.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
