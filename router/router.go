// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/jamfactoryapp/jamfactory-contract/cliparse"
	"github.com/jamfactoryapp/jamfactory-contract/handlers"
	"github.com/jamfactoryapp/jamfactory-contract/middleware"
	"github.com/jamfactoryapp/jamfactory-contract/schema"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, contract *schema.Contract) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	contractHandler := handlers.NewContractHandler(db, cfg, contract)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Contract endpoints of the configured variant
	for _, ep := range contract.Endpoints() {
		mux.HandleFunc(ep.Route(), middleware.WithLogging(contractHandler.Serve(ep)))
	}

	// Fixture management
	mux.HandleFunc("GET /contract", middleware.WithLogging(contractHandler.Describe))
	mux.HandleFunc("GET /fixtures", middleware.WithLogging(contractHandler.ListFixtures))
	mux.HandleFunc("PUT /fixtures", middleware.WithLogging(contractHandler.PutFixture))

	// Socket notifications
	mux.HandleFunc("GET /ws", middleware.WithLogging(contractHandler.ServeWS))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jamfactory contract " + contract.Version().Alias()))
	})

	return mux
}
