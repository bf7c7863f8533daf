// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/jamfactoryapp/jamfactory-contract/db"
	"github.com/jamfactoryapp/jamfactory-contract/models"
	"github.com/jamfactoryapp/jamfactory-contract/schema"
	"github.com/jamfactoryapp/jamfactory-contract/socket"
)

// receiveAll reads notifications until the server closes the stream
func receiveAll(t *testing.T, h *ContractHandler) ([]socket.Notification, *websocket.CloseError) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial: %v", err)
	}
	conn := socket.NewConn(ws, h.contract)
	defer ws.Close()

	var got []socket.Notification
	for {
		n, err := conn.Receive()
		if err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				t.Fatalf("Expected close frame, got %v", err)
			}
			return got, closeErr
		}
		got = append(got, n)
	}
}

func TestServeWS_PushesEveryEvent(t *testing.T) {
	tests := []struct {
		version schema.Version
		events  []models.Event
	}{
		{schema.A, []models.Event{models.EventJam, models.EventQueue, models.EventPlayback, models.EventClose, models.EventMembers}},
		{schema.B, []models.Event{models.EventJam, models.EventQueue, models.EventPlayback, models.EventClose}},
		{schema.C, []models.Event{models.EventJam, models.EventQueue, models.EventPlayback, models.EventClose, models.EventMembers}},
	}

	for _, tt := range tests {
		t.Run(string(tt.version), func(t *testing.T) {
			h, conn := newTestHandler(t, tt.version, true)
			defer conn.Close()

			got, closeErr := receiveAll(t, h)

			if closeErr.Code != websocket.CloseNormalClosure {
				t.Errorf("Expected normal closure, got %d", closeErr.Code)
			}
			if len(got) != len(tt.events) {
				t.Fatalf("Expected %d notifications, got %d", len(tt.events), len(got))
			}
			for i, want := range tt.events {
				if got[i].Event() != want {
					t.Errorf("Notification %d: expected %s, got %s", i, want, got[i].Event())
				}
			}
		})
	}
}

func TestServeWS_ReplaysEditedFixture(t *testing.T) {
	h, conn := newTestHandler(t, schema.C, false)
	defer conn.Close()

	err := db.PutFixture(context.Background(), conn, db.Fixture{
		Version: schema.C,
		Kind:    db.KindEvent,
		Route:   string(models.EventClose),
		Body:    []byte(`{"event":"close","message":"warning"}`),
	})
	if err != nil {
		t.Fatal(err)
	}

	got, _ := receiveAll(t, h)
	if len(got) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(got))
	}
	msg, ok := got[0].Message.(socket.CloseMessage)
	if !ok {
		t.Fatalf("Expected CloseMessage, got %T", got[0].Message)
	}
	if models.CloseReason(msg) != models.CloseWarning {
		t.Errorf("Expected reason 'warning', got %s", msg)
	}
}

func TestServeWS_RequiresUpgrade(t *testing.T) {
	h, conn := newTestHandler(t, schema.C, true)
	defer conn.Close()

	w := httptest.NewRecorder()
	h.ServeWS(w, httptest.NewRequest("GET", "/ws", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a plain GET, got %d", w.Code)
	}
}
