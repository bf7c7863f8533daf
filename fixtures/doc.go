// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package fixtures holds the example payloads of every contract variant:
// the jam session ABCD "Party", the member Alice (u1, Guest) and opaque
// Spotify samples. Every payload is checked against its variant when built.
package fixtures
