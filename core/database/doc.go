// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// MySQL (production) or SQLite (local runs and tests) connections based on the
// application's configuration.
//
// # Connect
//
// Connect opens the connection, applies pool settings and pings the database
// within the configured timeout. The MySQL DSN is formatted by the
// go-sql-driver config, so credentials need no manual escaping.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns (SHOW COLUMNS on MySQL, PRAGMA
// table_info on SQLite). MissingColumns compares them against the columns a
// model expects, which backs the inventory schema check.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "products", []string{"sku", "quantity"})
package database
