// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package codec

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jamfactoryapp/jamfactory-contract/models"
	"github.com/jamfactoryapp/jamfactory-contract/schema"
)

// Codec encodes and decodes HTTP bodies for one contract variant.
type Codec struct {
	contract *schema.Contract
}

func New(contract *schema.Contract) *Codec {
	return &Codec{contract: contract}
}

// ForTag resolves a version tag and returns its codec.
func ForTag(tag string) (*Codec, error) {
	c, err := schema.ResolveTag(tag)
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

func (c *Codec) Contract() *schema.Contract { return c.contract }

// EncodeResponse marshals body and checks it against the response shape of
// the (method, path) row.
func (c *Codec) EncodeResponse(method, path string, body any) ([]byte, error) {
	ep, err := c.contract.Endpoint(method, path)
	if err != nil {
		return nil, err
	}
	return c.encode(ep.Response, body, ep.Route()+" response")
}

// EncodeRequest marshals body and checks it against the request shape.
func (c *Codec) EncodeRequest(method, path string, body any) ([]byte, error) {
	ep, err := c.contract.Endpoint(method, path)
	if err != nil {
		return nil, err
	}
	return c.encode(ep.Request, body, ep.Route()+" request")
}

// DecodeRequest checks data against the request shape, then unmarshals it.
func (c *Codec) DecodeRequest(method, path string, data []byte, out any) error {
	ep, err := c.contract.Endpoint(method, path)
	if err != nil {
		return err
	}
	return c.decode(ep.Request, data, out, ep.Route()+" request")
}

// DecodeResponse checks data against the response shape, then unmarshals it.
func (c *Codec) DecodeResponse(method, path string, data []byte, out any) error {
	ep, err := c.contract.Endpoint(method, path)
	if err != nil {
		return err
	}
	return c.decode(ep.Response, data, out, ep.Route()+" response")
}

// EncodeMembers renders a member list the way this variant's
// GET /api/v1/jam/members responds.
func (c *Codec) EncodeMembers(members []models.Member) ([]byte, error) {
	ep, err := c.contract.Endpoint(http.MethodGet, schema.PathMembers)
	if err != nil {
		return nil, err
	}
	body, err := WrapMembers(ep.Response, members)
	if err != nil {
		return nil, err
	}
	return c.encode(ep.Response, body, ep.Route()+" response")
}

// DecodeMembers reads a member list in this variant's encoding.
func (c *Codec) DecodeMembers(data []byte) ([]models.Member, error) {
	ep, err := c.contract.Endpoint(http.MethodGet, schema.PathMembers)
	if err != nil {
		return nil, err
	}
	if err := c.contract.Validate(ep.Response, data); err != nil {
		return nil, fmt.Errorf("%s response: %w", ep.Route(), err)
	}
	return UnwrapMembers(ep.Response, data)
}

// EncodeMemberSettings renders the PUT /api/v1/jam/members request body.
func (c *Codec) EncodeMemberSettings(settings []models.MemberSettings) ([]byte, error) {
	ep, err := c.contract.Endpoint(http.MethodPut, schema.PathMembers)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = []models.MemberSettings{}
	}
	var body any = settings
	if isWrapped(ep.Request) {
		body = models.MemberSettingsList{Members: settings}
	}
	return c.encode(ep.Request, body, ep.Route()+" request")
}

// DecodeMemberSettings reads the PUT /api/v1/jam/members request body.
func (c *Codec) DecodeMemberSettings(data []byte) ([]models.MemberSettings, error) {
	ep, err := c.contract.Endpoint(http.MethodPut, schema.PathMembers)
	if err != nil {
		return nil, err
	}
	if isWrapped(ep.Request) {
		var list models.MemberSettingsList
		if err := c.decode(ep.Request, data, &list, ep.Route()+" request"); err != nil {
			return nil, err
		}
		return list.Members, nil
	}
	var settings []models.MemberSettings
	if err := c.decode(ep.Request, data, &settings, ep.Route()+" request"); err != nil {
		return nil, err
	}
	return settings, nil
}

// WrapMembers returns the value to marshal for a member collection of
// shape s: the bare slice or the Members envelope.
func WrapMembers(s schema.Shape, members []models.Member) (any, error) {
	if members == nil {
		members = []models.Member{}
	}
	switch {
	case s.Kind == schema.KindArray:
		return members, nil
	case isWrapped(s):
		return models.Members{Members: members}, nil
	default:
		return nil, fmt.Errorf("shape %s is not a member collection", s)
	}
}

// UnwrapMembers is the inverse of WrapMembers. data must already be valid
// against s.
func UnwrapMembers(s schema.Shape, data []byte) ([]models.Member, error) {
	switch {
	case s.Kind == schema.KindArray:
		var members []models.Member
		if err := json.Unmarshal(data, &members); err != nil {
			return nil, err
		}
		return members, nil
	case isWrapped(s):
		var wrapped models.Members
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, err
		}
		return wrapped.Members, nil
	default:
		return nil, fmt.Errorf("shape %s is not a member collection", s)
	}
}

func isWrapped(s schema.Shape) bool {
	return s.Kind == schema.KindObject && (s.Entity == schema.Members || s.Entity == schema.MemberSettingsList)
}

func (c *Codec) encode(s schema.Shape, body any, what string) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", what, err)
	}
	if err := c.contract.Validate(s, data); err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	return data, nil
}

func (c *Codec) decode(s schema.Shape, data []byte, out any, what string) error {
	if err := c.contract.Validate(s, data); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", what, err)
	}
	return nil
}
