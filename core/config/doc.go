// Package config provides configuration management for the floor plan service.
//
// It uses Viper for loading configuration from environment variables and an
// optional .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, admin or booking mode)
//   - Database: driver (sqlite or mysql) and connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Editor: snapping, double-click window, resize minimums, wall defaults, sessions
//   - Render: default canvas size for floor renders
//
// # Hot Reload
//
// Watch observes the .env file and reloads the configuration on change. The
// start command uses it to push new editor settings to sessions opened after
// the change.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
