// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/jamfactoryapp/jamfactory-contract/models"
)

func fieldNames(e Entity) []string {
	var names []string
	for _, f := range e.Fields {
		names = append(names, f.Name)
	}
	return names
}

func TestSessionDetailsPerVersion(t *testing.T) {
	tests := []struct {
		version Version
		fields  []string
		gated   []string
	}{
		{A, []string{"label", "name", "active"}, nil},
		{B, []string{"label", "name", "active", "voting_type"}, []string{"voting_type"}},
		{C, []string{"label", "name", "active", "voting_type"}, []string{"voting_type"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.version), func(t *testing.T) {
			e, err := MustResolve(tt.version).Entity(SessionDetails)
			if err != nil {
				t.Fatal(err)
			}
			if got := fieldNames(e); !reflect.DeepEqual(got, tt.fields) {
				t.Errorf("fields = %v, want %v", got, tt.fields)
			}
			if got := e.GatedFields(); !reflect.DeepEqual(got, tt.gated) {
				t.Errorf("gated = %v, want %v", got, tt.gated)
			}
		})
	}

	f, _ := MustResolve(C).Entity(SessionDetails)
	vt, ok := f.Field("voting_type")
	if !ok || vt.Optional || vt.Since != B {
		t.Errorf("voting_type = %+v, want required since B", vt)
	}
}

func TestEntityGating(t *testing.T) {
	tests := []struct {
		version Version
		entity  string
		present bool
	}{
		{A, AuthCurrent, false},
		{B, AuthCurrent, true},
		{C, AuthCurrent, true},
		{A, Member, true},
		{B, Member, false},
		{C, Member, true},
		{A, Members, false},
		{B, Members, false},
		{C, Members, true},
		{C, MemberSettingsList, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.version)+" "+tt.entity, func(t *testing.T) {
			_, err := MustResolve(tt.version).Entity(tt.entity)
			if tt.present && err != nil {
				t.Errorf("Expected %s in %s, got %v", tt.entity, tt.version, err)
			}
			if !tt.present && !errors.Is(err, ErrNotInVersion) {
				t.Errorf("Expected ErrNotInVersion for %s in %s, got %v", tt.entity, tt.version, err)
			}
		})
	}

	if _, err := MustResolve(C).Entity("Playlist"); !errors.Is(err, ErrUnknownEntity) {
		t.Errorf("Expected ErrUnknownEntity, got %v", err)
	}
}

func TestEntityIsCopied(t *testing.T) {
	c := MustResolve(C)
	e, _ := c.Entity(SessionDetails)
	e.Fields[0].Name = "changed"

	again, _ := c.Entity(SessionDetails)
	if again.Fields[0].Name != "label" {
		t.Error("Entity returned a shared field slice")
	}
}

func TestEndpointTable(t *testing.T) {
	tests := []struct {
		version  Version
		method   string
		path     string
		request  string
		response string
		err      error
	}{
		{A, http.MethodGet, PathJam, EmptyRequest, SessionDetails, nil},
		{A, http.MethodGet, PathMembers, EmptyRequest, "Member[]", nil},
		{A, http.MethodPut, PathMembers, "MemberSettings[]", "Member[]", nil},
		{A, http.MethodGet, PathAuthCurrent, "", "", ErrNotInVersion},
		{B, http.MethodGet, PathAuthCurrent, EmptyRequest, AuthCurrent, nil},
		{B, http.MethodGet, PathMembers, "", "", ErrNotInVersion},
		{B, http.MethodPut, PathMembers, "", "", ErrNotInVersion},
		{C, http.MethodGet, PathMembers, EmptyRequest, Members, nil},
		{C, http.MethodPut, PathMembers, MemberSettingsList, Members, nil},
		{C, http.MethodGet, PathPlaylists, EmptyRequest, "opaque", nil},
		{C, http.MethodPut, PathSearch, SearchRequest, "opaque", nil},
		{C, http.MethodDelete, PathQueueDelete, Vote, Queue, nil},
		{C, http.MethodPost, PathJam, "", "", ErrUnknownEndpoint},
		{C, http.MethodGet, "/api/v1/nope", "", "", ErrUnknownEndpoint},
	}

	for _, tt := range tests {
		t.Run(string(tt.version)+" "+tt.method+" "+tt.path, func(t *testing.T) {
			ep, err := MustResolve(tt.version).Endpoint(tt.method, tt.path)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("error = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if ep.Request.String() != tt.request || ep.Response.String() != tt.response {
				t.Errorf("got %s -> %s, want %s -> %s", ep.Request, ep.Response, tt.request, tt.response)
			}
		})
	}
}

func TestEndpointCounts(t *testing.T) {
	want := map[Version]int{A: 21, B: 20, C: 22}
	for v, n := range want {
		eps := MustResolve(v).Endpoints()
		if len(eps) != n {
			t.Errorf("%s has %d endpoints, want %d", v, len(eps), n)
		}
		for i := 1; i < len(eps); i++ {
			if routeIndex(eps[i-1].Route()) > routeIndex(eps[i].Route()) {
				t.Errorf("%s endpoints out of order at %s", v, eps[i].Route())
			}
		}
	}
	if got := MustResolve(C).Endpoints()[0].Route(); got != "GET "+PathLogin {
		t.Errorf("first endpoint = %s", got)
	}
}

func TestEventTable(t *testing.T) {
	tests := []struct {
		version Version
		event   models.Event
		payload string
		err     error
	}{
		{A, models.EventJam, SessionDetails, nil},
		{A, models.EventQueue, Queue, nil},
		{A, models.EventPlayback, PlaybackBody, nil},
		{A, models.EventClose, "enum(host|inactive|warning)", nil},
		{A, models.EventMembers, "Member[]", nil},
		{B, models.EventMembers, "", ErrNotInVersion},
		{C, models.EventMembers, Members, nil},
		{C, models.Event("chat"), "", ErrUnknownEvent},
	}

	for _, tt := range tests {
		t.Run(string(tt.version)+" "+string(tt.event), func(t *testing.T) {
			s, err := MustResolve(tt.version).Event(tt.event)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("error = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if s.String() != tt.payload {
				t.Errorf("payload = %s, want %s", s, tt.payload)
			}
		})
	}

	var order []models.Event
	for _, e := range MustResolve(B).Events() {
		order = append(order, e.Event)
	}
	want := []models.Event{models.EventJam, models.EventQueue, models.EventPlayback, models.EventClose}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("B events = %v, want %v", order, want)
	}
}

// changeRows drops the apply funcs, which reflect.DeepEqual never matches
func changeRows(changes []Change) []Change {
	out := make([]Change, len(changes))
	for i, ch := range changes {
		out[i] = Change{Version: ch.Version, Kind: ch.Kind, Target: ch.Target, Note: ch.Note}
	}
	return out
}

func TestDiff(t *testing.T) {
	ab, err := Diff(A, B)
	if err != nil {
		t.Fatal(err)
	}
	bc, _ := Diff(B, C)
	ac, _ := Diff(A, C)

	if len(ac) != len(ab)+len(bc) {
		t.Errorf("Diff(A, C) has %d changes, want %d", len(ac), len(ab)+len(bc))
	}
	for _, ch := range ab {
		if ch.Version != B {
			t.Errorf("Diff(A, B) contains change of %s: %s", ch.Version, ch.Target)
		}
	}
	if got, want := changeRows(MustResolve(B).Changes()), changeRows(ab); !reflect.DeepEqual(got, want) {
		t.Errorf("B.Changes() = %v, want %v", got, want)
	}
	if len(MustResolve(A).Changes()) != 0 {
		t.Error("A should have no changes")
	}

	same, err := Diff(C, C)
	if err != nil || len(same) != 0 {
		t.Errorf("Diff(C, C) = %v, %v", same, err)
	}

	if _, err := Diff(C, A); err == nil {
		t.Error("Expected error diffing backwards")
	}
	if _, err := Diff(A, "Q"); !errors.Is(err, ErrUnknownVersion) {
		t.Errorf("Expected ErrUnknownVersion, got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	d := MustResolve(C).Describe()

	if d.Version != C || d.Alias != "v3" || !d.Canonical {
		t.Errorf("header = %+v", d)
	}
	if len(d.Endpoints) != 22 || len(d.Events) != 5 {
		t.Errorf("got %d endpoints and %d events", len(d.Endpoints), len(d.Events))
	}
	if len(d.Changes) == 0 {
		t.Error("C should list its changes")
	}

	if a := MustResolve(A).Describe(); a.Changes == nil || a.Canonical {
		t.Errorf("A description = %+v", a)
	}
}
