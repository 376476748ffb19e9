// Package config loads runtime configuration for the ledger CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string     database driver: sqlite or pgx
//	-dsn string   database file path (sqlite) or connection string (pgx)
//	-l string     log level: debug, info, warn or error
//
// # JSON schema
//
//	{
//	  "database_driver": "sqlite",
//	  "database_dsn": "ledger.db",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// Keys missing from the JSON file keep their default values.
package config
