// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jamfactoryapp/jamfactory-contract/models"
)

var (
	ErrUnknownVersion  = errors.New("unknown schema version")
	ErrNotInVersion    = errors.New("not part of this schema version")
	ErrUnknownEndpoint = errors.New("unknown endpoint")
	ErrUnknownEvent    = errors.New("unknown socket event")
	ErrUnknownEntity   = errors.New("unknown entity")
	ErrInvalidPayload  = errors.New("invalid payload")
)

// Endpoint is one row of the HTTP contract table.
type Endpoint struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	Request  Shape  `json:"request"`
	Response Shape  `json:"response"`
}

// Route returns the pattern form, e.g. "GET /api/v1/jam".
func (e Endpoint) Route() string { return e.Method + " " + e.Path }

// EventSpec is one row of the socket contract table.
type EventSpec struct {
	Event   models.Event `json:"event"`
	Payload Shape        `json:"payload"`
}

// Contract is the resolved set of entities, endpoints and events of one
// variant. It is immutable once built.
type Contract struct {
	version   Version
	entities  map[string]Entity
	endpoints map[string]Endpoint
	events    map[models.Event]Shape
}

func (c *Contract) Version() Version { return c.version }

// Entity returns the field set of name in this variant.
func (c *Contract) Entity(name string) (Entity, error) {
	if e, ok := c.entities[name]; ok {
		return e.clone(), nil
	}
	if knownEntities[name] {
		return Entity{}, fmt.Errorf("entity %s: %w (%s)", name, ErrNotInVersion, c.version)
	}
	return Entity{}, fmt.Errorf("%w: %s", ErrUnknownEntity, name)
}

// Entities returns every entity of the variant sorted by name.
func (c *Contract) Entities() []Entity {
	out := make([]Entity, 0, len(c.entities))
	for _, e := range c.entities {
		out = append(out, e.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Endpoint looks up the (method, path) row.
func (c *Contract) Endpoint(method, path string) (Endpoint, error) {
	route := method + " " + path
	if e, ok := c.endpoints[route]; ok {
		return e, nil
	}
	if routeIndex(route) >= 0 {
		return Endpoint{}, fmt.Errorf("endpoint %s: %w (%s)", route, ErrNotInVersion, c.version)
	}
	return Endpoint{}, fmt.Errorf("%w: %s", ErrUnknownEndpoint, route)
}

// Endpoints returns the table in declaration order.
func (c *Contract) Endpoints() []Endpoint {
	out := make([]Endpoint, 0, len(c.endpoints))
	for _, e := range c.endpoints {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return routeIndex(out[i].Route()) < routeIndex(out[j].Route())
	})
	return out
}

// Event returns the payload shape of a socket event.
func (c *Contract) Event(event models.Event) (Shape, error) {
	if s, ok := c.events[event]; ok {
		return s, nil
	}
	if event.Valid() {
		return Shape{}, fmt.Errorf("event %s: %w (%s)", event, ErrNotInVersion, c.version)
	}
	return Shape{}, fmt.Errorf("%w: %q", ErrUnknownEvent, string(event))
}

// Events returns the socket table in declaration order.
func (c *Contract) Events() []EventSpec {
	var out []EventSpec
	for _, name := range models.Events {
		if s, ok := c.events[models.Event(name)]; ok {
			out = append(out, EventSpec{Event: models.Event(name), Payload: s})
		}
	}
	return out
}

// Changes lists the migrations that produced this variant from its
// predecessor. The first variant has none.
func (c *Contract) Changes() []Change {
	var out []Change
	for _, ch := range migrations {
		if ch.Version == c.version {
			out = append(out, ch)
		}
	}
	return out
}

// Description is the JSON-friendly summary of a contract.
type Description struct {
	Version   Version        `json:"version"`
	Alias     string         `json:"alias"`
	Canonical bool           `json:"canonical"`
	Endpoints []RouteSummary `json:"endpoints"`
	Events    []EventSummary `json:"events"`
	Changes   []Change       `json:"changes"`
}

type RouteSummary struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	Request  string `json:"request"`
	Response string `json:"response"`
}

type EventSummary struct {
	Event   models.Event `json:"event"`
	Payload string       `json:"payload"`
}

func (c *Contract) Describe() Description {
	d := Description{
		Version:   c.version,
		Alias:     c.version.Alias(),
		Canonical: c.version == Canonical,
		Changes:   c.Changes(),
	}
	for _, e := range c.Endpoints() {
		d.Endpoints = append(d.Endpoints, RouteSummary{
			Method:   e.Method,
			Path:     e.Path,
			Request:  e.Request.String(),
			Response: e.Response.String(),
		})
	}
	for _, e := range c.Events() {
		d.Events = append(d.Events, EventSummary{Event: e.Event, Payload: e.Payload.String()})
	}
	if d.Changes == nil {
		d.Changes = []Change{}
	}
	return d
}

func (c *Contract) clone(v Version) *Contract {
	next := &Contract{
		version:   v,
		entities:  make(map[string]Entity, len(c.entities)),
		endpoints: make(map[string]Endpoint, len(c.endpoints)),
		events:    make(map[models.Event]Shape, len(c.events)),
	}
	for k, e := range c.entities {
		next.entities[k] = e.clone()
	}
	for k, e := range c.endpoints {
		next.endpoints[k] = e
	}
	for k, s := range c.events {
		next.events[k] = s
	}
	return next
}
