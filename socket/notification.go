// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package socket

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jamfactoryapp/jamfactory-contract/codec"
	"github.com/jamfactoryapp/jamfactory-contract/models"
	"github.com/jamfactoryapp/jamfactory-contract/schema"
)

// Message is the payload of a notification. The event tag is derived from
// the concrete type, so tag and payload cannot disagree.
type Message interface {
	Event() models.Event
	isMessage()
}

type JamMessage models.SessionDetails
type QueueMessage models.Queue
type PlaybackMessage models.PlaybackBody
type CloseMessage models.CloseReason

// MembersMessage is encoded as a bare array in A and wrapped in C.
type MembersMessage []models.Member

func (JamMessage) Event() models.Event      { return models.EventJam }
func (QueueMessage) Event() models.Event    { return models.EventQueue }
func (PlaybackMessage) Event() models.Event { return models.EventPlayback }
func (CloseMessage) Event() models.Event    { return models.EventClose }
func (MembersMessage) Event() models.Event  { return models.EventMembers }

func (JamMessage) isMessage()      {}
func (QueueMessage) isMessage()    {}
func (PlaybackMessage) isMessage() {}
func (CloseMessage) isMessage()    {}
func (MembersMessage) isMessage()  {}

// Notification is one frame of the socket stream.
type Notification struct {
	Message Message
}

func (n Notification) Event() models.Event {
	if n.Message == nil {
		return ""
	}
	return n.Message.Event()
}

type envelope struct {
	Event   models.Event    `json:"event"`
	Message json.RawMessage `json:"message"`
}


// Encode renders msg as {event, message} and checks the payload against
// the event's shape in contract.
func Encode(contract *schema.Contract, msg Message) ([]byte, error) {
	if msg == nil {
		return nil, fmt.Errorf("%w: nil message", schema.ErrInvalidPayload)
	}
	shape, err := contract.Event(msg.Event())
	if err != nil {
		return nil, err
	}

	var payload any = msg
	if members, ok := msg.(MembersMessage); ok {
		payload, err = codec.WrapMembers(shape, []models.Member(members))
		if err != nil {
			return nil, err
		}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s message: %w", msg.Event(), err)
	}
	if err := contract.Validate(shape, data); err != nil {
		return nil, fmt.Errorf("%s message: %w", msg.Event(), err)
	}
	return json.Marshal(envelope{Event: msg.Event(), Message: data})
}

// Decode reads the event tag first, then checks and unmarshals the
// payload into the event's own type. A payload shaped like another
// event's is rejected.
func Decode(contract *schema.Contract, data []byte) (Notification, error) {
	// Envelope keys must be exactly event and message
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Notification{}, fmt.Errorf("%w: malformed notification: %v", schema.ErrInvalidPayload, err)
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k != "event" && k != "message" {
			return Notification{}, fmt.Errorf("%w: notification has unknown key %q", schema.ErrInvalidPayload, k)
		}
	}
	rawEvent, ok := raw["event"]
	if !ok {
		return Notification{}, fmt.Errorf("%w: notification has no event", schema.ErrInvalidPayload)
	}
	body, ok := raw["message"]
	if !ok {
		return Notification{}, fmt.Errorf("%w: notification has no message", schema.ErrInvalidPayload)
	}
	var name string
	if err := json.Unmarshal(rawEvent, &name); err != nil {
		return Notification{}, fmt.Errorf("%w: notification event must be a string", schema.ErrInvalidPayload)
	}

	event := models.Event(name)
	shape, err := contract.Event(event)
	if err != nil {
		return Notification{}, err
	}
	if err := contract.Validate(shape, body); err != nil {
		return Notification{}, fmt.Errorf("%s message: %w", event, err)
	}

	var msg Message
	switch event {
	case models.EventJam:
		var m JamMessage
		err = json.Unmarshal(body, &m)
		msg = m
	case models.EventQueue:
		var m QueueMessage
		err = json.Unmarshal(body, &m)
		msg = m
	case models.EventPlayback:
		var m PlaybackMessage
		err = json.Unmarshal(body, &m)
		msg = m
	case models.EventClose:
		var reason models.CloseReason
		err = json.Unmarshal(body, &reason)
		msg = CloseMessage(reason)
	case models.EventMembers:
		var members []models.Member
		members, err = codec.UnwrapMembers(shape, body)
		msg = MembersMessage(members)
	default:
		return Notification{}, fmt.Errorf("%w: %q", schema.ErrUnknownEvent, string(event))
	}
	if err != nil {
		return Notification{}, fmt.Errorf("failed to unmarshal %s message: %w", event, err)
	}
	return Notification{Message: msg}, nil
}
