// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores the example payloads served by the contract mock server.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same statements run on SQLite (modernc.org/sqlite) and PostgreSQL
(lib/pq).

# Tables

  - fixture: one stored body per (version, kind, route)

Response fixtures use the route as key ("GET /api/v1/jam") and hold the
response body. Event fixtures use the event name ("close") and hold the
complete {event, message} frame.

# Fixtures

	n, err := db.SeedFixtures(ctx, conn, contract)  // defaults, never overwrites
	err = db.PutFixture(ctx, conn, f)                // insert or replace
	body, err := db.GetFixture(ctx, conn, v, db.KindResponse, route)
	all, err := db.ListFixtures(ctx, conn, v)

GetFixture returns ErrNotFound when nothing is stored. Callers validate
bodies against the contract before PutFixture; the table does not.
*/
package db
