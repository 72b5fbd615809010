// Package database handles database connections and schema inspection.
//
// It wraps GORM and opens either MySQL or SQLite depending on the configured
// driver. SQLite is the default so the service runs without external
// infrastructure; MySQL is used in shared deployments.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let features verify that the tables
// they rely on carry the expected columns, which catches half-applied
// migrations at startup.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "walls", []string{"id", "start_x"})
package database
