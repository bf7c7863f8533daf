// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindString  Kind = "string"
	KindBool    Kind = "bool"
	KindInteger Kind = "integer"
	KindEnum    Kind = "enum"
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	KindOpaque  Kind = "opaque"
)

// Shape describes one JSON value.
type Shape struct {
	Kind   Kind     `json:"kind"`
	Entity string   `json:"entity,omitempty"` // KindObject
	Elem   *Shape   `json:"elem,omitempty"`   // KindArray
	Values []string `json:"values,omitempty"` // KindEnum
	Min    *int64   `json:"min,omitempty"`    // KindInteger
}

func String() Shape { return Shape{Kind: KindString} }
func Bool() Shape   { return Shape{Kind: KindBool} }

// Opaque accepts any JSON value. Used for Spotify-owned payloads.
func Opaque() Shape { return Shape{Kind: KindOpaque} }

func Integer(min int64) Shape { return Shape{Kind: KindInteger, Min: &min} }

func Enum(values ...string) Shape {
	return Shape{Kind: KindEnum, Values: append([]string(nil), values...)}
}

// Ref points at a named entity of the same contract.
func Ref(entity string) Shape { return Shape{Kind: KindObject, Entity: entity} }

func ArrayOf(elem Shape) Shape { return Shape{Kind: KindArray, Elem: &elem} }

func (s Shape) String() string {
	switch s.Kind {
	case KindObject:
		return s.Entity
	case KindArray:
		if s.Elem == nil {
			return "[]"
		}
		return s.Elem.String() + "[]"
	case KindEnum:
		return "enum(" + strings.Join(s.Values, "|") + ")"
	case KindInteger:
		if s.Min != nil {
			return fmt.Sprintf("integer(>=%d)", *s.Min)
		}
		return "integer"
	default:
		return string(s.Kind)
	}
}

// Field is one key of an entity. Since is empty for fields present in
// every variant that has the entity, and names the variant that
// introduced the field otherwise.
type Field struct {
	Name     string  `json:"name"`
	Shape    Shape   `json:"shape"`
	Optional bool    `json:"optional,omitempty"`
	Since    Version `json:"since,omitempty"`
}

// Gated reports whether the field only exists from some variant on.
func (f Field) Gated() bool { return f.Since != "" }

// Entity is a named field set.
type Entity struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

func (e Entity) Field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// GatedFields names the fields introduced by a migration.
func (e Entity) GatedFields() []string {
	var names []string
	for _, f := range e.Fields {
		if f.Gated() {
			names = append(names, f.Name)
		}
	}
	return names
}

func (e Entity) clone() Entity {
	return Entity{Name: e.Name, Fields: append([]Field(nil), e.Fields...)}
}

func required(name string, s Shape) Field { return Field{Name: name, Shape: s} }
func optional(name string, s Shape) Field { return Field{Name: name, Shape: s, Optional: true} }
