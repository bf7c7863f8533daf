// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

// ValidationError locates the first mismatch between a document and a
// shape. It matches ErrInvalidPayload.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid payload at %s: %s", e.Path, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidPayload }

// Validate checks data against s. Objects may not carry keys their entity
// does not declare, and every non-optional field must be present.
// A null array is read as empty.
func (c *Contract) Validate(s Shape, data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return &ValidationError{Path: "$", Reason: "malformed JSON: " + err.Error()}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return &ValidationError{Path: "$", Reason: "trailing data after JSON value"}
	}
	return c.check(s, v, "$")
}

// ValidateEntity is Validate against a named entity.
func (c *Contract) ValidateEntity(name string, data []byte) error {
	if _, err := c.Entity(name); err != nil {
		return err
	}
	return c.Validate(Ref(name), data)
}

func (c *Contract) check(s Shape, v any, path string) error {
	switch s.Kind {
	case KindOpaque:
		return nil
	case KindString:
		if _, ok := v.(string); !ok {
			return mismatch(path, "string", v)
		}
	case KindBool:
		if _, ok := v.(bool); !ok {
			return mismatch(path, "bool", v)
		}
	case KindInteger:
		n, ok := v.(json.Number)
		if !ok {
			return mismatch(path, "integer", v)
		}
		i, err := n.Int64()
		if err != nil {
			return &ValidationError{Path: path, Reason: fmt.Sprintf("%s is not an integer", n)}
		}
		if s.Min != nil && i < *s.Min {
			return &ValidationError{Path: path, Reason: fmt.Sprintf("%d is below minimum %d", i, *s.Min)}
		}
	case KindEnum:
		str, ok := v.(string)
		if !ok {
			return mismatch(path, "string", v)
		}
		for _, allowed := range s.Values {
			if str == allowed {
				return nil
			}
		}
		return &ValidationError{Path: path, Reason: fmt.Sprintf("%q is not one of %v", str, s.Values)}
	case KindArray:
		if v == nil {
			return nil
		}
		items, ok := v.([]any)
		if !ok {
			return mismatch(path, "array", v)
		}
		for i, item := range items {
			if err := c.check(*s.Elem, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case KindObject:
		return c.checkObject(s.Entity, v, path)
	default:
		return fmt.Errorf("shape at %s has unknown kind %q", path, s.Kind)
	}
	return nil
}

func (c *Contract) checkObject(name string, v any, path string) error {
	entity, ok := c.entities[name]
	if !ok {
		_, err := c.Entity(name)
		return err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return mismatch(path, name+" object", v)
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := entity.Field(k); !ok {
			return &ValidationError{Path: path + "." + k, Reason: fmt.Sprintf("field not declared by %s in %s", name, c.version)}
		}
	}

	for _, f := range entity.Fields {
		val, present := obj[f.Name]
		if !present {
			if f.Optional {
				continue
			}
			return &ValidationError{Path: path + "." + f.Name, Reason: "required field missing"}
		}
		if err := c.check(f.Shape, val, path+"."+f.Name); err != nil {
			return err
		}
	}
	return nil
}

func mismatch(path, want string, got any) error {
	return &ValidationError{Path: path, Reason: fmt.Sprintf("expected %s, got %s", want, jsonType(got))}
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
