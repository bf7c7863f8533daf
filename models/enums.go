// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"fmt"
)

// UserType is both a user's type and a member's rights.
type UserType string

const (
	UserNew   UserType = "New"
	UserGuest UserType = "Guest"
	UserHost  UserType = "Host"
)

// VotingType selects how queue votes are counted.
type VotingType string

const (
	VotingSession VotingType = "session_voting"
	VotingIP      VotingType = "ip_voting"
)

// Event is the discriminator of a socket notification.
type Event string

const (
	EventJam      Event = "jam"
	EventQueue    Event = "queue"
	EventPlayback Event = "playback"
	EventClose    Event = "close"
	EventMembers  Event = "members"
)

// CloseReason explains why the server closed a socket.
type CloseReason string

const (
	CloseHost     CloseReason = "host"
	CloseInactive CloseReason = "inactive"
	CloseWarning  CloseReason = "warning"
)

var (
	UserTypes    = []string{string(UserNew), string(UserGuest), string(UserHost)}
	VotingTypes  = []string{string(VotingSession), string(VotingIP)}
	Events       = []string{string(EventJam), string(EventQueue), string(EventPlayback), string(EventClose), string(EventMembers)}
	CloseReasons = []string{string(CloseHost), string(CloseInactive), string(CloseWarning)}
)

func (t UserType) Valid() bool    { return contains(UserTypes, string(t)) }
func (t VotingType) Valid() bool  { return contains(VotingTypes, string(t)) }
func (e Event) Valid() bool       { return contains(Events, string(e)) }
func (r CloseReason) Valid() bool { return contains(CloseReasons, string(r)) }

func (t *UserType) UnmarshalJSON(data []byte) error {
	s, err := unmarshalEnum(data, "user type", UserTypes)
	*t = UserType(s)
	return err
}

func (t *VotingType) UnmarshalJSON(data []byte) error {
	s, err := unmarshalEnum(data, "voting type", VotingTypes)
	*t = VotingType(s)
	return err
}

func (e *Event) UnmarshalJSON(data []byte) error {
	s, err := unmarshalEnum(data, "socket event", Events)
	*e = Event(s)
	return err
}

func (r *CloseReason) UnmarshalJSON(data []byte) error {
	s, err := unmarshalEnum(data, "close reason", CloseReasons)
	*r = CloseReason(s)
	return err
}

// VotingTypePtr is a convenience for filling optional fields.
func VotingTypePtr(t VotingType) *VotingType {
	return &t
}

func unmarshalEnum(data []byte, kind string, allowed []string) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("%s must be a string: %w", kind, err)
	}
	if !contains(allowed, s) {
		return "", fmt.Errorf("unknown %s %q", kind, s)
	}
	return s, nil
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
