// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the JamFactory contract mock server.

JamFactory is a shared music-queue service: a host opens a jam session
bound to a Spotify account, guests join with a label, and everyone votes
on queued tracks. This module holds the wire contract between its web
client and server in its three historical variants (A, B, C, also called
v1, v2, v3), and a mock server that speaks one variant with stored
example payloads.

# Starting the Server

The schema version has no default and must be chosen:

	JAM_SCHEMA_VERSION=C go run .

Or with flags:

	go run . -schema v2 -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - JAM_SCHEMA_VERSION (-schema): A, B, C or v1, v2, v3

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): fixture store (default: file:jamcontract.db)
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)

A .env file in the working directory is read first (-env to change it).

# Architecture

  - models: Go value types of every contract entity and enum
  - schema: entity registry, endpoint and event tables, version resolver, validation
  - codec: versioned encode/decode of HTTP bodies
  - socket: tagged-union notifications and a websocket connection
  - fixtures: canonical example payloads per variant
  - db: fixture store schema and queries
  - handlers: mock server handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
