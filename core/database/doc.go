// Package database handles database connections.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections based
// on the application's configuration. The connection is optional: it is only
// opened when the database sink for cleaned payments is enabled.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
