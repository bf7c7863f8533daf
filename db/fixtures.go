// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jamfactoryapp/jamfactory-contract/fixtures"
	"github.com/jamfactoryapp/jamfactory-contract/schema"
	"github.com/jamfactoryapp/jamfactory-contract/socket"
)

// Fixture kinds
const (
	KindResponse = "response"
	KindEvent    = "event"
)

var ErrNotFound = errors.New("fixture not found")

// Fixture is a stored example payload. Response fixtures are keyed by
// route ("GET /api/v1/jam") and hold the response body; event fixtures are
// keyed by event name and hold the whole {event, message} frame.
type Fixture struct {
	Version schema.Version  `json:"version"`
	Kind    string          `json:"kind"`
	Route   string          `json:"route"`
	Body    json.RawMessage `json:"body"`
}

// PutFixture inserts or replaces a fixture.
func PutFixture(ctx context.Context, db *sql.DB, f Fixture) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO fixture (version, kind, route, body, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (version, kind, route) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
	`, string(f.Version), f.Kind, f.Route, string(f.Body), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to store fixture %s %s: %w", f.Kind, f.Route, err)
	}
	return nil
}

// GetFixture loads one fixture body. Returns ErrNotFound if absent.
func GetFixture(ctx context.Context, db *sql.DB, version schema.Version, kind, route string) (json.RawMessage, error) {
	var body string
	err := db.QueryRowContext(ctx, `
		SELECT body FROM fixture WHERE version = $1 AND kind = $2 AND route = $3
	`, string(version), kind, route).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load fixture %s %s: %w", kind, route, err)
	}
	return json.RawMessage(body), nil
}

// ListFixtures returns every fixture of a variant ordered by kind and route.
func ListFixtures(ctx context.Context, db *sql.DB, version schema.Version) ([]Fixture, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT kind, route, body FROM fixture WHERE version = $1 ORDER BY kind, route
	`, string(version))
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures: %w", err)
	}
	defer rows.Close()

	out := []Fixture{}
	for rows.Next() {
		f := Fixture{Version: version}
		var body string
		if err := rows.Scan(&f.Kind, &f.Route, &body); err != nil {
			return nil, fmt.Errorf("failed to read fixture row: %w", err)
		}
		f.Body = json.RawMessage(body)
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SeedFixtures stores the default fixtures of the contract without
// overwriting fixtures already present. Returns how many were inserted.
func SeedFixtures(ctx context.Context, db *sql.DB, contract *schema.Contract) (int, error) {
	var seed []Fixture

	responses, err := fixtures.Responses(contract)
	if err != nil {
		return 0, err
	}
	for route, body := range responses {
		seed = append(seed, Fixture{Version: contract.Version(), Kind: KindResponse, Route: route, Body: body})
	}
	for _, msg := range fixtures.Notifications(contract) {
		frame, err := socket.Encode(contract, msg)
		if err != nil {
			return 0, err
		}
		seed = append(seed, Fixture{Version: contract.Version(), Kind: KindEvent, Route: string(msg.Event()), Body: frame})
	}

	inserted := 0
	for _, f := range seed {
		res, err := db.ExecContext(ctx, `
			INSERT INTO fixture (version, kind, route, body, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (version, kind, route) DO NOTHING
		`, string(f.Version), f.Kind, f.Route, string(f.Body), time.Now().UTC())
		if err != nil {
			return inserted, fmt.Errorf("failed to seed fixture %s %s: %w", f.Kind, f.Route, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}
	return inserted, nil
}
