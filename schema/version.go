// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"fmt"
	"strings"
)

// Version labels one variant of the contract.
type Version string

const (
	A Version = "A"
	B Version = "B"
	C Version = "C"
)

// Canonical is the variant new deployments should target.
const Canonical = C

// versions lists the variants in migration order.
var versions = []Version{A, B, C}

var aliases = map[string]Version{
	"a": A, "v1": A,
	"b": B, "v2": B,
	"c": C, "v3": C,
}

// ParseVersion maps a tag (A, b, v3, ...) to a Version.
// There is no default; an empty or unknown tag is an error.
func ParseVersion(tag string) (Version, error) {
	v, ok := aliases[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVersion, tag)
	}
	return v, nil
}

// Versions returns every known variant in migration order.
func Versions() []Version {
	out := make([]Version, len(versions))
	copy(out, versions)
	return out
}

// Alias returns the v1/v2/v3 form of the version.
func (v Version) Alias() string {
	if i := v.index(); i >= 0 {
		return fmt.Sprintf("v%d", i+1)
	}
	return ""
}

// Before reports whether v is migrated earlier than other.
func (v Version) Before(other Version) bool {
	return v.index() < other.index()
}

func (v Version) index() int {
	for i, known := range versions {
		if known == v {
			return i
		}
	}
	return -1
}
