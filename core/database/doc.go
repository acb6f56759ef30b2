// Package database handles the MySQL connection and schema inspection.
//
// It wraps GORM to configure connections from the application's
// configuration, with sane pool limits and an initial ping so a dead
// database is reported at startup instead of on first use.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns inspect a live table against the
// column set a feature expects. The history feature uses this to verify
// its run table after migration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("History persistence disabled", zap.Error(err))
//	}
package database
