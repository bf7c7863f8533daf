// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package socket

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/jamfactoryapp/jamfactory-contract/models"
	"github.com/jamfactoryapp/jamfactory-contract/schema"
)

var (
	session = models.SessionDetails{Label: "ABCD", Name: "Party", Active: true}
	queue   = models.Queue{Tracks: []models.QueueSong{
		{SpotifyTrackFull: json.RawMessage(`{"id":"t1"}`), Votes: 1, Voted: false},
	}}
	playback = models.PlaybackBody{Playback: json.RawMessage(`{"is_playing":true}`), DeviceID: "d1"}
	alice    = models.Member{DisplayName: "Alice", Identifier: "u1", Rights: models.UserGuest}
)

func TestCloseInactive(t *testing.T) {
	n, err := Decode(schema.MustResolve(schema.A), []byte(`{"event":"close","message":"inactive"}`))
	if err != nil {
		t.Fatal(err)
	}
	msg, ok := n.Message.(CloseMessage)
	if !ok {
		t.Fatalf("Expected CloseMessage, got %T", n.Message)
	}
	if models.CloseReason(msg) != models.CloseInactive {
		t.Errorf("Expected inactive, got %s", msg)
	}
}

func TestRoundTripPerEvent(t *testing.T) {
	withVoting := session
	withVoting.VotingType = models.VotingTypePtr(models.VotingSession)

	tests := []struct {
		version schema.Version
		msg     Message
		frame   string
	}{
		{schema.A, JamMessage(session), `{"event":"jam","message":{"label":"ABCD","name":"Party","active":true}}`},
		{schema.C, JamMessage(withVoting), `{"event":"jam","message":{"label":"ABCD","name":"Party","active":true,"voting_type":"session_voting"}}`},
		{schema.C, QueueMessage(queue), `{"event":"queue","message":{"tracks":[{"spotifyTrackFull":{"id":"t1"},"votes":1,"voted":false}]}}`},
		{schema.B, PlaybackMessage(playback), `{"event":"playback","message":{"playback":{"is_playing":true},"device_id":"d1"}}`},
		{schema.C, CloseMessage(models.CloseHost), `{"event":"close","message":"host"}`},
		{schema.A, MembersMessage{alice}, `{"event":"members","message":[{"display_name":"Alice","identifier":"u1","rights":"Guest"}]}`},
		{schema.C, MembersMessage{alice}, `{"event":"members","message":{"members":[{"display_name":"Alice","identifier":"u1","rights":"Guest"}]}}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.version)+" "+string(tt.msg.Event()), func(t *testing.T) {
			c := schema.MustResolve(tt.version)

			data, err := Encode(c, tt.msg)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.frame {
				t.Errorf("Encode = %s, want %s", data, tt.frame)
			}

			n, err := Decode(c, data)
			if err != nil {
				t.Fatal(err)
			}
			if n.Event() != tt.msg.Event() {
				t.Errorf("event = %s, want %s", n.Event(), tt.msg.Event())
			}
			if !reflect.DeepEqual(n.Message, tt.msg) {
				t.Errorf("message = %#v, want %#v", n.Message, tt.msg)
			}
		})
	}
}

func TestDecodeRejectsOtherEventShapes(t *testing.T) {
	c := schema.MustResolve(schema.C)

	sessionJSON := `{"label":"ABCD","name":"Party","active":true,"voting_type":"ip_voting"}`
	queueJSON := `{"tracks":[]}`
	playbackJSON := `{"playback":{},"device_id":"d1"}`
	membersJSON := `{"members":[]}`

	tests := []struct {
		event   string
		message string
	}{
		{"jam", queueJSON},
		{"jam", playbackJSON},
		{"queue", sessionJSON},
		{"queue", membersJSON},
		{"playback", sessionJSON},
		{"playback", queueJSON},
		{"close", sessionJSON},
		{"close", `"closed"`},
		{"members", queueJSON},
		{"members", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.event+" "+tt.message, func(t *testing.T) {
			frame := `{"event":"` + tt.event + `","message":` + tt.message + `}`
			_, err := Decode(c, []byte(frame))
			if !errors.Is(err, schema.ErrInvalidPayload) {
				t.Errorf("Expected ErrInvalidPayload, got %v", err)
			}
		})
	}
}

func TestDecodeEnvelopeErrors(t *testing.T) {
	tests := []struct {
		name    string
		version schema.Version
		frame   string
		err     error
	}{
		{"malformed", schema.C, `{"event":`, schema.ErrInvalidPayload},
		{"no event", schema.C, `{"message":"host"}`, schema.ErrInvalidPayload},
		{"no message", schema.C, `{"event":"close"}`, schema.ErrInvalidPayload},
		{"unknown event", schema.C, `{"event":"chat","message":{}}`, schema.ErrUnknownEvent},
		{"members in B", schema.B, `{"event":"members","message":[]}`, schema.ErrNotInVersion},
		{"extra key", schema.C, `{"event":"close","message":"inactive","extra":{"a":1}}`, schema.ErrInvalidPayload},
		{"upper case keys", schema.C, `{"EVENT":"close","Message":"inactive"}`, schema.ErrInvalidPayload},
		{"mixed case message key", schema.C, `{"event":"close","Message":"inactive"}`, schema.ErrInvalidPayload},
		{"event not a string", schema.C, `{"event":4,"message":"inactive"}`, schema.ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(schema.MustResolve(tt.version), []byte(tt.frame))
			if !errors.Is(err, tt.err) {
				t.Errorf("error = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestEncodeRejects(t *testing.T) {
	if _, err := Encode(schema.MustResolve(schema.B), MembersMessage{alice}); !errors.Is(err, schema.ErrNotInVersion) {
		t.Errorf("members in B: expected ErrNotInVersion, got %v", err)
	}
	if _, err := Encode(schema.MustResolve(schema.C), JamMessage(session)); !errors.Is(err, schema.ErrInvalidPayload) {
		t.Errorf("jam without voting_type in C: expected ErrInvalidPayload, got %v", err)
	}
	if _, err := Encode(schema.MustResolve(schema.C), nil); !errors.Is(err, schema.ErrInvalidPayload) {
		t.Errorf("nil message: expected ErrInvalidPayload, got %v", err)
	}
}

func TestConnSendReceive(t *testing.T) {
	contract := schema.MustResolve(schema.C)
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn := NewConn(ws, contract)
		defer conn.Close()

		// Echo one notification back
		n, err := conn.Receive()
		if err != nil {
			return
		}
		conn.Send(n.Message)
	}))
	defer server.Close()

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	if err != nil {
		t.Fatalf("Failed to dial: %v", err)
	}
	conn := NewConn(ws, contract)
	defer ws.Close()

	if err := conn.Send(QueueMessage(queue)); err != nil {
		t.Fatal(err)
	}

	n, err := conn.Receive()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(n.Message, QueueMessage(queue)) {
		t.Errorf("echo = %#v", n.Message)
	}

	_, err = conn.Receive()
	var closeErr *websocket.CloseError
	if !errors.As(err, &closeErr) || closeErr.Code != websocket.CloseNormalClosure {
		t.Errorf("Expected normal closure, got %v", err)
	}
}

func TestConnRejectsBinaryFrames(t *testing.T) {
	contract := schema.MustResolve(schema.C)
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		ws.WriteMessage(websocket.BinaryMessage, []byte(`{"event":"close","message":"host"}`))
	}))
	defer server.Close()

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	if err != nil {
		t.Fatalf("Failed to dial: %v", err)
	}
	defer ws.Close()

	if _, err := NewConn(ws, contract).Receive(); !errors.Is(err, schema.ErrInvalidPayload) {
		t.Errorf("Expected ErrInvalidPayload for binary frame, got %v", err)
	}
}
