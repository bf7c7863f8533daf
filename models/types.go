package models

import "encoding/json"

// Core envelopes

type EmptyRequest struct{}

type EmptyResponse struct{}

type SuccessConfirmation struct {
	Success bool `json:"success"`
}

// Auth

type AuthURL struct {
	URL string `json:"url"`
}

// Only served from variant B on.
type AuthCurrent struct {
	User       UserType `json:"user"`
	Label      string   `json:"label"`
	Authorized bool     `json:"authorized"`
}

// Users

type User struct {
	Identifier        string   `json:"identifier"`
	DisplayName       string   `json:"display_name"`
	Type              UserType `json:"type"`
	JoinedLabel       string   `json:"joined_label"`
	SpotifyAuthorized bool     `json:"spotify_authorized"`
}

type UserDetails struct {
	DisplayName string `json:"display_name"`
}

// Jam sessions

// SessionDetails describes a jam session. VotingType is version-gated:
// it must be nil in variant A and set in variants B and C.
type SessionDetails struct {
	Label      string      `json:"label"`
	Name       string      `json:"name"`
	Active     bool        `json:"active"`
	VotingType *VotingType `json:"voting_type,omitempty"`
}

// VotingType is accepted from variant B on.
type SessionSetting struct {
	Name       *string     `json:"name,omitempty"`
	Active     *bool       `json:"active,omitempty"`
	VotingType *VotingType `json:"voting_type,omitempty"`
}

type PlaybackSettings struct {
	Playing  *bool   `json:"playing,omitempty"`
	DeviceID *string `json:"device_id,omitempty"`
}

type LabelBody struct {
	Label string `json:"label"`
}

// Playback is Spotify's CurrentlyPlayingObject, passed through untouched.
type PlaybackBody struct {
	Playback json.RawMessage `json:"playback"`
	DeviceID string          `json:"device_id"`
}

// Members

type Member struct {
	DisplayName string   `json:"display_name"`
	Identifier  string   `json:"identifier"`
	Rights      UserType `json:"rights"`
}

type MemberSettings struct {
	Identifier string   `json:"identifier"`
	Rights     UserType `json:"rights"`
}

// Members is the variant C envelope around a member collection.
type Members struct {
	Members []Member `json:"members"`
}

// MemberSettingsList is the variant C envelope around member settings.
type MemberSettingsList struct {
	Members []MemberSettings `json:"members"`
}

// Queue

// QueueSong pairs a Spotify TrackObjectFull with its vote state.
// Voted is relative to the requesting user.
type QueueSong struct {
	SpotifyTrackFull json.RawMessage `json:"spotifyTrackFull"`
	Votes            int             `json:"votes"`
	Voted            bool            `json:"voted"`
}

// Queue lists tracks in play order.
type Queue struct {
	Tracks []QueueSong `json:"tracks"`
}

type Vote struct {
	Track string `json:"track"`
}

type CollectionInfo struct {
	Collection string `json:"collection"`
	Type       string `json:"type"`
}

// Spotify passthrough

type SearchRequest struct {
	Text *string `json:"text,omitempty"`
	Type *string `json:"type,omitempty"`
}

// Each device is a Spotify UserDevice.
type Devices struct {
	Devices []json.RawMessage `json:"devices"`
}

// Socket

type CloseEvent struct {
	Reason CloseReason `json:"reason"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
