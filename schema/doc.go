// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package schema is the versioned registry of the JamFactory wire contract.

# Variants

Three snapshots of the contract exist. They are labeled A, B and C (tags
v1, v2 and v3 are accepted too) and built as sequential migrations:

	A        base snapshot
	A -> B   adds AuthCurrent and voting_type, drops member management
	B -> C   brings member management back, wrapped as {members: [...]}

C is Canonical. The full diff table is available from Diff and
Contract.Changes.

# Resolving

	c, err := schema.ResolveTag(cfg.SchemaVersion)
	if errors.Is(err, schema.ErrUnknownVersion) {
		// fail fast, never fall back to a default
	}

A Contract answers three lookups:

	c.Entity("SessionDetails")             // field set
	c.Endpoint("GET", "/api/v1/jam")       // request and response shapes
	c.Event(models.EventClose)             // socket payload shape

Lookups of something another variant has return ErrNotInVersion; lookups
of something no variant has return ErrUnknownEntity, ErrUnknownEndpoint
or ErrUnknownEvent.

# Shapes and fields

A Shape is one of string, bool, integer, enum, object (a Ref to an entity),
array or opaque. Opaque shapes stand for Spotify-owned payloads and accept
any JSON value.

Fields added by a migration carry Since, so version-gated fields can be
told apart from fields every variant has:

	e, _ := c.Entity(schema.SessionDetails)
	e.GatedFields() // ["voting_type"] in B and C, none in A

# Validation

Validate checks a document against a shape:

  - keys an entity does not declare are rejected
  - required fields, gated or not, must be present
  - enumerations are closed
  - integers must respect their minimum

Failures are *ValidationError values and match ErrInvalidPayload.
*/
package schema
