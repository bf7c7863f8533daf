// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jamfactoryapp/jamfactory-contract/cliparse"
	"github.com/jamfactoryapp/jamfactory-contract/db"
	"github.com/jamfactoryapp/jamfactory-contract/middleware"
	"github.com/jamfactoryapp/jamfactory-contract/schema"
)

type ContractHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	contract *schema.Contract
}

func NewContractHandler(db *sql.DB, cfg cliparse.Config, contract *schema.Contract) *ContractHandler {
	return &ContractHandler{db: db, cfg: cfg, contract: contract}
}

// Serve returns the handler for one endpoint of the contract.
// The request is checked against the endpoint's request shape and the
// stored response fixture is replayed.
func (h *ContractHandler) Serve(ep schema.Endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := middleware.ReadBody(w, r)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read request body")
			return
		}

		// Body-less requests (GET /api/v1/jam/join?label=ABCD) carry their
		// fields in the query string
		if len(body) == 0 {
			body, err = h.queryBody(ep.Request, r.URL.Query())
			if err != nil {
				slog.Error("failed to encode query body", "route", ep.Route(), "error", err)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read request")
				return
			}
		}

		if err := h.contract.Validate(ep.Request, body); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		fixture, err := db.GetFixture(r.Context(), h.db, h.contract.Version(), db.KindResponse, ep.Route())
		if errors.Is(err, db.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "No fixture for "+ep.Route())
			return
		}
		if err != nil {
			slog.Error("failed to load fixture", "route", ep.Route(), "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		middleware.RawJSONResponse(w, http.StatusOK, fixture)
	}
}

// queryBody builds a JSON object from query parameters. Values are typed
// by the entity field they name; anything else stays a string and is
// left for validation to reject.
func (h *ContractHandler) queryBody(s schema.Shape, query url.Values) ([]byte, error) {
	var entity schema.Entity
	if s.Kind == schema.KindObject {
		entity, _ = h.contract.Entity(s.Entity)
	}

	obj := make(map[string]any, len(query))
	for key := range query {
		raw := query.Get(key)
		obj[key] = raw

		f, ok := entity.Field(key)
		if !ok {
			continue
		}
		switch f.Shape.Kind {
		case schema.KindBool:
			if b, err := strconv.ParseBool(raw); err == nil {
				obj[key] = b
			}
		case schema.KindInteger:
			if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
				obj[key] = n
			}
		}
	}
	return json.Marshal(obj)
}

// Describe handles GET /contract
func (h *ContractHandler) Describe(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.contract.Describe())
}

// ListFixtures handles GET /fixtures
func (h *ContractHandler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	fixtures, err := db.ListFixtures(r.Context(), h.db, h.contract.Version())
	if err != nil {
		slog.Error("failed to list fixtures", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, fixtures)
}

// PutFixture handles PUT /fixtures?method=GET&path=/api/v1/jam and
// PUT /fixtures?event=queue
// Response fixtures must match the response shape of the endpoint; event
// fixtures are whole {event, message} frames.
func (h *ContractHandler) PutFixture(w http.ResponseWriter, r *http.Request) {
	body, err := middleware.ReadBody(w, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	q := r.URL.Query()
	var f db.Fixture
	if event := q.Get("event"); event != "" {
		f, err = h.eventFixture(event, body)
	} else {
		f, err = h.responseFixture(q.Get("method"), q.Get("path"), body)
	}
	if err != nil {
		middleware.ErrorResponse(w, statusFor(err), err.Error())
		return
	}

	if err := db.PutFixture(r.Context(), h.db, f); err != nil {
		slog.Error("failed to store fixture", "kind", f.Kind, "route", f.Route, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("fixture replaced",
		"version", h.contract.Version(),
		"kind", f.Kind,
		"route", f.Route,
		"request_id", middleware.RequestID(r.Context()),
	)
	middleware.JSONResponse(w, http.StatusOK, f)
}

func (h *ContractHandler) responseFixture(method, path string, body []byte) (db.Fixture, error) {
	if method == "" || path == "" {
		return db.Fixture{}, fmt.Errorf("%w: method and path are required", schema.ErrUnknownEndpoint)
	}
	ep, err := h.contract.Endpoint(method, path)
	if err != nil {
		return db.Fixture{}, err
	}
	if err := h.contract.Validate(ep.Response, body); err != nil {
		return db.Fixture{}, err
	}
	return db.Fixture{
		Version: h.contract.Version(),
		Kind:    db.KindResponse,
		Route:   ep.Route(),
		Body:    body,
	}, nil
}

// statusFor maps contract lookup and validation errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, schema.ErrNotInVersion):
		return http.StatusNotFound
	case errors.Is(err, schema.ErrInvalidPayload),
		errors.Is(err, schema.ErrUnknownEndpoint),
		errors.Is(err, schema.ErrUnknownEvent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
