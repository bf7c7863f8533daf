// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fixtures

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jamfactoryapp/jamfactory-contract/codec"
	"github.com/jamfactoryapp/jamfactory-contract/models"
	"github.com/jamfactoryapp/jamfactory-contract/schema"
	"github.com/jamfactoryapp/jamfactory-contract/socket"
)

const (
	Label    = "ABCD"
	JamName  = "Party"
	DeviceID = "d1"
)

var (
	Track = json.RawMessage(`{"id":"4uLU6hMCjMI75M1A2tKUQC","name":"Never Gonna Give You Up","uri":"spotify:track:4uLU6hMCjMI75M1A2tKUQC"}`)

	Playback = json.RawMessage(`{"is_playing":true,"progress_ms":1000,"item":{"id":"4uLU6hMCjMI75M1A2tKUQC"}}`)

	Device = json.RawMessage(`{"id":"d1","is_active":true,"name":"Kitchen","type":"Speaker","volume_percent":50}`)

	Playlists = json.RawMessage(`{"playlists":{"href":"","items":[],"limit":20,"offset":0,"total":0}}`)

	Search = json.RawMessage(`{"tracks":{"href":"","items":[],"limit":20,"offset":0,"total":0}}`)
)

// Alice is the sample member.
var Alice = models.Member{DisplayName: "Alice", Identifier: "u1", Rights: models.UserGuest}

// Session returns the sample session in the shape of v.
func Session(v schema.Version) models.SessionDetails {
	s := models.SessionDetails{Label: Label, Name: JamName, Active: true}
	if v != schema.A {
		s.VotingType = models.VotingTypePtr(models.VotingSession)
	}
	return s
}

func Queue() models.Queue {
	return models.Queue{Tracks: []models.QueueSong{
		{SpotifyTrackFull: Track, Votes: 2, Voted: true},
	}}
}

func PlaybackBody() models.PlaybackBody {
	return models.PlaybackBody{Playback: Playback, DeviceID: DeviceID}
}

// Responses returns one example response body per endpoint of the contract,
// keyed by route ("GET /api/v1/jam"). Every body is valid for the contract.
func Responses(c *schema.Contract) (map[string]json.RawMessage, error) {
	v := c.Version()
	success := models.SuccessConfirmation{Success: true}
	user := models.User{
		Identifier:        "u1",
		DisplayName:       "Alice",
		Type:              models.UserGuest,
		JoinedLabel:       Label,
		SpotifyAuthorized: false,
	}

	byRoute := map[string]any{
		http.MethodGet + " " + schema.PathLogin:          models.AuthURL{URL: "https://accounts.spotify.com/authorize"},
		http.MethodGet + " " + schema.PathLogout:         success,
		http.MethodGet + " " + schema.PathAuthCurrent:    models.AuthCurrent{User: models.UserGuest, Label: Label, Authorized: true},
		http.MethodGet + " " + schema.PathMe:             user,
		http.MethodPut + " " + schema.PathMe:             user,
		http.MethodDelete + " " + schema.PathMe:          success,
		http.MethodPut + " " + schema.PathJamCreate:      models.LabelBody{Label: Label},
		http.MethodGet + " " + schema.PathJam:            Session(v),
		http.MethodPut + " " + schema.PathJam:            Session(v),
		http.MethodGet + " " + schema.PathJamJoin:        models.LabelBody{Label: Label},
		http.MethodGet + " " + schema.PathJamLeave:       success,
		http.MethodGet + " " + schema.PathPlayback:       PlaybackBody(),
		http.MethodPut + " " + schema.PathPlayback:       PlaybackBody(),
		http.MethodPut + " " + schema.PathCollection:     Queue(),
		http.MethodDelete + " " + schema.PathQueueDelete: models.Queue{Tracks: []models.QueueSong{}},
		http.MethodGet + " " + schema.PathQueue:          Queue(),
		http.MethodGet + " " + schema.PathVote:           Queue(),
		http.MethodGet + " " + schema.PathDevices:        models.Devices{Devices: []json.RawMessage{Device}},
		http.MethodGet + " " + schema.PathPlaylists:      Playlists,
		http.MethodPut + " " + schema.PathSearch:         Search,
	}

	out := make(map[string]json.RawMessage)
	enc := codec.New(c)
	for _, ep := range c.Endpoints() {
		var (
			data []byte
			err  error
		)
		if ep.Path == schema.PathMembers {
			data, err = enc.EncodeMembers([]models.Member{Alice})
		} else {
			body, ok := byRoute[ep.Route()]
			if !ok {
				return nil, fmt.Errorf("no fixture for %s", ep.Route())
			}
			data, err = enc.EncodeResponse(ep.Method, ep.Path, body)
		}
		if err != nil {
			return nil, fmt.Errorf("fixture %s (%s): %w", ep.Route(), v, err)
		}
		out[ep.Route()] = data
	}
	return out, nil
}

// Notifications returns one example message per event of the contract.
func Notifications(c *schema.Contract) []socket.Message {
	var out []socket.Message
	for _, e := range c.Events() {
		switch e.Event {
		case models.EventJam:
			out = append(out, socket.JamMessage(Session(c.Version())))
		case models.EventQueue:
			out = append(out, socket.QueueMessage(Queue()))
		case models.EventPlayback:
			out = append(out, socket.PlaybackMessage(PlaybackBody()))
		case models.EventClose:
			out = append(out, socket.CloseMessage(models.CloseInactive))
		case models.EventMembers:
			out = append(out, socket.MembersMessage{Alice})
		}
	}
	return out
}
