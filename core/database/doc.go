// Package database opens the local store backing the synchronized object
// graph.
//
// It provides a wrapper around GORM that configures the store from the
// application's configuration. The default driver is sqlite, which keeps the
// whole graph in a single file and needs no external service; MySQL is
// available for shared installations.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
