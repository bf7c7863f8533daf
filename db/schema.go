// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The statements run on both SQLite and PostgreSQL.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schemaDDL)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schemaDDL = `
-- Fixtures served by the mock server, one per (variant, kind, route)
CREATE TABLE IF NOT EXISTS fixture (
    version TEXT NOT NULL CHECK (version IN ('A', 'B', 'C')),
    kind TEXT NOT NULL CHECK (kind IN ('response', 'event')),
    route TEXT NOT NULL,
    body TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (version, kind, route)
);

CREATE INDEX IF NOT EXISTS idx_fixture_version_kind ON fixture(version, kind);
`
