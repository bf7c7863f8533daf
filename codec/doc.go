// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package codec encodes and decodes HTTP bodies for one contract variant.

Every encode checks the marshaled document against the endpoint's shape
before returning it, and every decode checks the document before
unmarshaling, so a body of the wrong variant never leaves or enters:

	c, err := codec.ForTag("v1")
	data, err := c.EncodeResponse("GET", "/api/v1/jam", models.SessionDetails{
		Label: "ABCD", Name: "Party", Active: true,
	})
	// {"label":"ABCD","name":"Party","active":true}

The same value under v2 fails, because voting_type is required there.

# Member collections

Member lists are a bare array in variant A and {members: [...]} in C. The
encoding follows the contract's endpoint table, never the document:

	data, err := c.EncodeMembers(members)
	members, err := c.DecodeMembers(data)

Variant B has no member endpoints; both calls return
schema.ErrNotInVersion.
*/
package codec
