// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/jamfactoryapp/jamfactory-contract/db"
	"github.com/jamfactoryapp/jamfactory-contract/models"
	"github.com/jamfactoryapp/jamfactory-contract/schema"
	"github.com/jamfactoryapp/jamfactory-contract/socket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The mock server is meant for local front-end development
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (h *ContractHandler) eventFixture(name string, frame []byte) (db.Fixture, error) {
	event := models.Event(name)
	if _, err := h.contract.Event(event); err != nil {
		return db.Fixture{}, err
	}

	n, err := socket.Decode(h.contract, frame)
	if err != nil {
		return db.Fixture{}, err
	}
	if n.Event() != event {
		return db.Fixture{}, fmt.Errorf("%w: frame carries event %q, not %q", schema.ErrInvalidPayload, n.Event(), event)
	}

	return db.Fixture{
		Version: h.contract.Version(),
		Kind:    db.KindEvent,
		Route:   string(event),
		Body:    frame,
	}, nil
}

// ServeWS handles GET /ws
// Upgrades the connection, pushes every stored event fixture once in
// table order, then closes with a normal closure.
func (h *ContractHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	conn := socket.NewConn(ws, h.contract)
	defer conn.Close()

	sent := 0
	for _, ev := range h.contract.Events() {
		frame, err := db.GetFixture(r.Context(), h.db, h.contract.Version(), db.KindEvent, string(ev.Event))
		if errors.Is(err, db.ErrNotFound) {
			continue
		}
		if err != nil {
			slog.Error("failed to load event fixture", "event", ev.Event, "error", err)
			return
		}

		n, err := socket.Decode(h.contract, frame)
		if err != nil {
			slog.Error("stored event fixture is invalid", "event", ev.Event, "error", err)
			continue
		}
		if err := conn.Send(n.Message); err != nil {
			slog.Warn("failed to push notification", "event", ev.Event, "error", err)
			return
		}
		sent++
	}

	slog.Debug("notifications pushed", "count", sent, "version", h.contract.Version())
}
