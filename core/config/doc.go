// Package config provides configuration management for the comparison tool.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file, with defaults declared as struct tags on the
// section configs.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided
// into subsections:
//   - Server: HTTP server settings (port, API key, dump names, cache TTL)
//   - Database: MySQL connection details for run history
//   - Storage: S3/MinIO credentials and the dump bucket
//   - Log: Logging level and format
//   - Compare: comparison engine tuning (block aligner window)
//   - Report: rendering defaults (color, duplicate lists, block cap)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
