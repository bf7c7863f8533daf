// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		tag     string
		want    Version
		wantErr bool
	}{
		{"A", A, false},
		{"b", B, false},
		{"C", C, false},
		{"v1", A, false},
		{"V2", B, false},
		{"v3", C, false},
		{" c ", C, false},
		{"", "", true},
		{"v4", "", true},
		{"D", "", true},
		{"latest", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseVersion(tt.tag)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownVersion) {
					t.Errorf("ParseVersion(%q) error = %v, want ErrUnknownVersion", tt.tag, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q) unexpected error: %v", tt.tag, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %s, want %s", tt.tag, got, tt.want)
			}
		})
	}
}

func TestVersionOrder(t *testing.T) {
	vs := Versions()
	if len(vs) != 3 || vs[0] != A || vs[1] != B || vs[2] != C {
		t.Fatalf("Versions() = %v", vs)
	}

	// Callers cannot reorder the package's list
	vs[0] = C
	if Versions()[0] != A {
		t.Error("Versions() returned shared slice")
	}

	if !A.Before(B) || !B.Before(C) || C.Before(A) || B.Before(B) {
		t.Error("Before does not follow migration order")
	}

	for v, alias := range map[Version]string{A: "v1", B: "v2", C: "v3", "X": ""} {
		if got := v.Alias(); got != alias {
			t.Errorf("%s.Alias() = %q, want %q", v, got, alias)
		}
	}

	if Canonical != C {
		t.Errorf("Canonical = %s, want C", Canonical)
	}
}

func TestResolve(t *testing.T) {
	for _, v := range Versions() {
		c, err := Resolve(v)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", v, err)
		}
		if c.Version() != v {
			t.Errorf("Resolve(%s).Version() = %s", v, c.Version())
		}
	}

	if _, err := Resolve("D"); !errors.Is(err, ErrUnknownVersion) {
		t.Errorf("Resolve(D) error = %v, want ErrUnknownVersion", err)
	}

	c, err := ResolveTag("v2")
	if err != nil || c.Version() != B {
		t.Errorf("ResolveTag(v2) = %v, %v", c, err)
	}
	if _, err := ResolveTag(""); !errors.Is(err, ErrUnknownVersion) {
		t.Errorf("ResolveTag(\"\") error = %v, want ErrUnknownVersion", err)
	}
}

func TestMustResolvePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown version")
		}
	}()
	MustResolve("Z")
}
