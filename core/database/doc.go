// Package database handles database connections for the price collector.
//
// It provides a wrapper around GORM that configures either a local sqlite
// file (the default for single-machine use) or a MySQL connection for shared
// deployments.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
