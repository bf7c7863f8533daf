// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: fixture store connection string (default: file:jamcontract.db for sqlite)
  - DatabaseType: sqlite (default) or postgres
  - SchemaVersion: contract variant to serve (required)
  - LogLevel: debug, info, warn or error (default: info)
  - EnvFile: dotenv file loaded before reading the environment (default: .env)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-schema     Schema version tag
	-log-level  Log level
	-env        Dotenv file

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	JAM_SCHEMA_VERSION → -schema
	LOG_LEVEL          → -log-level

Variables from the dotenv file never override variables already set.
CLI flags take precedence over both.

# Validation

ParseFlags returns an error if:

  - the schema version is missing or unknown (wraps schema.ErrUnknownVersion)
  - the database type is not sqlite or postgres
  - postgres is selected without a database URL

There is no default schema version.
*/
package cliparse
