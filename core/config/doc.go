// Package config provides configuration management for the Track Manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Storage: object store provider, credentials and bucket
//   - Library: local track directory, storage mode and key namespace
//   - Sync: freshness tolerance, worker count, reason precedence and schedule
//   - Log: logging level, format and optional rotating file
//   - Database: connection used for durable sync state
//
// Defaults come from the `default` struct tags. List values are comma separated,
// e.g. LIBRARY_EXTENSIONS=.mp3,.flac.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
