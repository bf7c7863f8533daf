// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers of the contract mock server.

# Handler Types

ContractHandler serves one resolved contract variant from the fixture
store:

	h := handlers.NewContractHandler(db, cfg, contract)

# Contract Endpoints

Serve returns the handler of one endpoint row:

	mux.HandleFunc(ep.Route(), h.Serve(ep))

The request body is checked against the request shape of the endpoint.
Body-less requests use the query string instead, so
GET /api/v1/jam/join?label=ABCD is read as {"label":"ABCD"}. A mismatch
answers 400 with the location of the problem:

	{"error":"Bad Request","message":"invalid payload at $.display_name: required field missing"}

On success the stored response fixture for (variant, method, path) is
returned as is, or 404 when none is stored.

# Fixtures

	GET /contract                          → Describe
	GET /fixtures                          → ListFixtures
	PUT /fixtures?method=GET&path=/api/v1/jam → PutFixture (response body)
	PUT /fixtures?event=queue              → PutFixture ({event, message} frame)

Replacements are validated against the variant before they are stored.
A route or event the variant does not carry answers 404.

# Socket

	GET /ws → ServeWS

Pushes every stored event fixture once, in event table order, then closes
with a normal closure.
*/
package handlers
