// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"fmt"
	"net/http"

	"github.com/jamfactoryapp/jamfactory-contract/models"
)

type ChangeKind string

const (
	Added    ChangeKind = "added"
	Removed  ChangeKind = "removed"
	Reshaped ChangeKind = "reshaped"
)

// Change is one row of the diff table. Applying every change of a variant,
// in order, to its predecessor yields that variant.
type Change struct {
	Version Version    `json:"version"`
	Kind    ChangeKind `json:"kind"`
	Target  string     `json:"target"`
	Note    string     `json:"note,omitempty"`

	apply func(*Contract)
}

var migrations = []Change{
	// B
	{B, Added, "entity AuthCurrent", "user, label, authorized", func(c *Contract) {
		c.entities[AuthCurrent] = Entity{Name: AuthCurrent, Fields: []Field{
			required("user", Enum(models.UserTypes...)),
			required("label", String()),
			required("authorized", Bool()),
		}}
	}},
	{B, Added, "endpoint GET " + PathAuthCurrent, "", func(c *Contract) {
		c.setEndpoint(http.MethodGet, PathAuthCurrent, Ref(EmptyRequest), Ref(AuthCurrent))
	}},
	{B, Added, "field SessionDetails.voting_type", "required; session_voting or ip_voting", func(c *Contract) {
		c.addField(SessionDetails, Field{Name: "voting_type", Shape: Enum(models.VotingTypes...), Since: B})
	}},
	{B, Added, "field SessionSetting.voting_type", "optional", func(c *Contract) {
		c.addField(SessionSetting, Field{Name: "voting_type", Shape: Enum(models.VotingTypes...), Optional: true, Since: B})
	}},
	{B, Removed, "endpoint GET " + PathMembers, "", func(c *Contract) {
		delete(c.endpoints, http.MethodGet+" "+PathMembers)
	}},
	{B, Removed, "endpoint PUT " + PathMembers, "", func(c *Contract) {
		delete(c.endpoints, http.MethodPut+" "+PathMembers)
	}},
	{B, Removed, "event members", "", func(c *Contract) {
		delete(c.events, models.EventMembers)
	}},
	{B, Removed, "entity Member", "", func(c *Contract) {
		delete(c.entities, Member)
	}},
	{B, Removed, "entity MemberSettings", "", func(c *Contract) {
		delete(c.entities, MemberSettings)
	}},

	// C
	{C, Added, "entity Member", "", func(c *Contract) {
		c.entities[Member] = memberEntity()
	}},
	{C, Added, "entity MemberSettings", "", func(c *Contract) {
		c.entities[MemberSettings] = memberSettingsEntity()
	}},
	{C, Added, "entity Members", "{members: Member[]}", func(c *Contract) {
		c.entities[Members] = Entity{Name: Members, Fields: []Field{
			required("members", ArrayOf(Ref(Member))),
		}}
	}},
	{C, Added, "entity MemberSettingsList", "{members: MemberSettings[]}", func(c *Contract) {
		c.entities[MemberSettingsList] = Entity{Name: MemberSettingsList, Fields: []Field{
			required("members", ArrayOf(Ref(MemberSettings))),
		}}
	}},
	{C, Reshaped, "endpoint GET " + PathMembers, "Member[] wrapped as Members", func(c *Contract) {
		c.setEndpoint(http.MethodGet, PathMembers, Ref(EmptyRequest), Ref(Members))
	}},
	{C, Reshaped, "endpoint PUT " + PathMembers, "MemberSettings[] wrapped as MemberSettingsList", func(c *Contract) {
		c.setEndpoint(http.MethodPut, PathMembers, Ref(MemberSettingsList), Ref(Members))
	}},
	{C, Reshaped, "event members", "payload wrapped as Members", func(c *Contract) {
		c.events[models.EventMembers] = Ref(Members)
	}},
}

// Diff returns the changes that turn from into to. It only runs forward.
func Diff(from, to Version) ([]Change, error) {
	if from.index() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVersion, string(from))
	}
	if to.index() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVersion, string(to))
	}
	if to.Before(from) {
		return nil, fmt.Errorf("cannot diff backwards from %s to %s", from, to)
	}
	var out []Change
	for _, ch := range migrations {
		if from.Before(ch.Version) && !to.Before(ch.Version) {
			out = append(out, ch)
		}
	}
	return out, nil
}

func (c *Contract) setEndpoint(method, path string, req, resp Shape) {
	e := Endpoint{Method: method, Path: path, Request: req, Response: resp}
	c.endpoints[e.Route()] = e
}

func (c *Contract) addField(entity string, f Field) {
	e := c.entities[entity]
	e.Fields = append(e.Fields, f)
	c.entities[entity] = e
}

var contracts = buildContracts()

func buildContracts() map[Version]*Contract {
	out := make(map[Version]*Contract, len(versions))
	current := baseContract()
	out[A] = current
	for _, v := range versions[1:] {
		current = current.clone(v)
		for _, ch := range migrations {
			if ch.Version == v {
				ch.apply(current)
			}
		}
		out[v] = current
	}
	return out
}

// Resolve returns the contract of v. Unknown versions are an error.
func Resolve(v Version) (*Contract, error) {
	c, ok := contracts[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVersion, string(v))
	}
	return c, nil
}

// ResolveTag parses a version tag and resolves it.
func ResolveTag(tag string) (*Contract, error) {
	v, err := ParseVersion(tag)
	if err != nil {
		return nil, err
	}
	return Resolve(v)
}

// MustResolve is Resolve for versions known at compile time.
func MustResolve(v Version) *Contract {
	c, err := Resolve(v)
	if err != nil {
		panic(err)
	}
	return c
}
