// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the contract mock server.

# Route Registration

NewRouter creates a configured http.ServeMux for one resolved contract:

	contract, _ := schema.Resolve(cfg.SchemaVersion)
	mux := router.NewRouter(db, cfg, contract)

# Endpoints

Health:

	GET /health

Contract endpoints are registered from the endpoint table of the variant,
so a route missing from the variant is simply not served. For example
GET /api/v1/jam/members exists in A and C but not in B, and
GET /api/v1/auth/current exists in B and C but not in A.

Fixture management:

	GET /contract  - Resolved contract: endpoints, events, changes
	GET /fixtures  - Stored fixtures of the variant
	PUT /fixtures  - Replace one fixture (?method=&path= or ?event=)

Socket notifications:

	GET /ws - Pushes every stored event fixture, then closes

# Handler Initialization

	contractHandler := handlers.NewContractHandler(db, cfg, contract)

Every route except /health is wrapped with middleware.WithLogging.
*/
package router
