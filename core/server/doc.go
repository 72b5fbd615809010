// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, and the canvas mode. The
// mode is the single capability switch between the admin canvas (full editing)
// and the booking canvas (selection and hover only).
package server
