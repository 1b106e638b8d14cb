// Package database handles database connections and schema inspection.
//
// It wraps GORM to open either an embedded SQLite file or a MySQL server based on the
// application's configuration. The database is optional: it only backs durable sync
// retry state (sync.persist_state) and the schema health check.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and pings the database
// within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for both dialects so the health feature
// can verify the sync_attempts table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "sync_attempts")
package database
