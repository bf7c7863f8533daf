// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"net/http"

	"github.com/jamfactoryapp/jamfactory-contract/models"
)

// Entity names.
const (
	EmptyRequest        = "EmptyRequest"
	EmptyResponse       = "EmptyResponse"
	SuccessConfirmation = "SuccessConfirmation"
	AuthURL             = "AuthURL"
	AuthCurrent         = "AuthCurrent"
	User                = "User"
	UserDetails         = "UserDetails"
	SessionDetails      = "SessionDetails"
	SessionSetting      = "SessionSetting"
	PlaybackSettings    = "PlaybackSettings"
	LabelBody           = "LabelBody"
	PlaybackBody        = "PlaybackBody"
	Member              = "Member"
	MemberSettings      = "MemberSettings"
	Members             = "Members"
	MemberSettingsList  = "MemberSettingsList"
	QueueSong           = "QueueSong"
	Queue               = "Queue"
	Vote                = "Vote"
	CollectionInfo      = "CollectionInfo"
	SearchRequest       = "SearchRequest"
	Devices             = "Devices"
	CloseEvent          = "CloseEvent"
)

// Paths.
const (
	PathLogin       = "/api/v1/auth/login"
	PathLogout      = "/api/v1/auth/logout"
	PathAuthCurrent = "/api/v1/auth/current"
	PathMe          = "/api/v1/me"
	PathJamCreate   = "/api/v1/jam/create"
	PathJam         = "/api/v1/jam"
	PathJamJoin     = "/api/v1/jam/join"
	PathJamLeave    = "/api/v1/jam/leave"
	PathPlayback    = "/api/v1/jam/playback"
	PathMembers     = "/api/v1/jam/members"
	PathCollection  = "/api/v1/queue/collection"
	PathQueueDelete = "/api/v1/queue/delete"
	PathQueue       = "/api/v1/queue"
	PathVote        = "/api/v1/queue/vote"
	PathDevices     = "/api/v1/spotify/devices"
	PathPlaylists   = "/api/v1/spotify/playlists"
	PathSearch      = "/api/v1/spotify/search"
)

// routeOrder is the declaration order of every route any variant serves.
var routeOrder = []string{
	http.MethodGet + " " + PathLogin,
	http.MethodGet + " " + PathLogout,
	http.MethodGet + " " + PathAuthCurrent,
	http.MethodGet + " " + PathMe,
	http.MethodPut + " " + PathMe,
	http.MethodDelete + " " + PathMe,
	http.MethodPut + " " + PathJamCreate,
	http.MethodGet + " " + PathJam,
	http.MethodPut + " " + PathJam,
	http.MethodGet + " " + PathJamJoin,
	http.MethodGet + " " + PathJamLeave,
	http.MethodGet + " " + PathPlayback,
	http.MethodPut + " " + PathPlayback,
	http.MethodGet + " " + PathMembers,
	http.MethodPut + " " + PathMembers,
	http.MethodPut + " " + PathCollection,
	http.MethodDelete + " " + PathQueueDelete,
	http.MethodGet + " " + PathQueue,
	http.MethodGet + " " + PathVote,
	http.MethodGet + " " + PathDevices,
	http.MethodGet + " " + PathPlaylists,
	http.MethodPut + " " + PathSearch,
}

func routeIndex(route string) int {
	for i, r := range routeOrder {
		if r == route {
			return i
		}
	}
	return -1
}

var knownEntities = map[string]bool{}

func init() {
	for _, name := range []string{
		EmptyRequest, EmptyResponse, SuccessConfirmation, AuthURL, AuthCurrent,
		User, UserDetails, SessionDetails, SessionSetting, PlaybackSettings,
		LabelBody, PlaybackBody, Member, MemberSettings, Members,
		MemberSettingsList, QueueSong, Queue, Vote, CollectionInfo,
		SearchRequest, Devices, CloseEvent,
	} {
		knownEntities[name] = true
	}
}

func memberEntity() Entity {
	return Entity{Name: Member, Fields: []Field{
		required("display_name", String()),
		required("identifier", String()),
		required("rights", Enum(models.UserTypes...)),
	}}
}

func memberSettingsEntity() Entity {
	return Entity{Name: MemberSettings, Fields: []Field{
		required("identifier", String()),
		required("rights", Enum(models.UserTypes...)),
	}}
}

// baseContract is variant A, the snapshot every migration starts from.
func baseContract() *Contract {
	c := &Contract{
		version:   A,
		entities:  map[string]Entity{},
		endpoints: map[string]Endpoint{},
		events:    map[models.Event]Shape{},
	}

	for _, e := range []Entity{
		{Name: EmptyRequest},
		{Name: EmptyResponse},
		{Name: SuccessConfirmation, Fields: []Field{required("success", Bool())}},
		{Name: AuthURL, Fields: []Field{required("url", String())}},
		{Name: User, Fields: []Field{
			required("identifier", String()),
			required("display_name", String()),
			required("type", Enum(models.UserTypes...)),
			required("joined_label", String()),
			required("spotify_authorized", Bool()),
		}},
		{Name: UserDetails, Fields: []Field{required("display_name", String())}},
		{Name: SessionDetails, Fields: []Field{
			required("label", String()),
			required("name", String()),
			required("active", Bool()),
		}},
		{Name: SessionSetting, Fields: []Field{
			optional("name", String()),
			optional("active", Bool()),
		}},
		{Name: PlaybackSettings, Fields: []Field{
			optional("playing", Bool()),
			optional("device_id", String()),
		}},
		{Name: LabelBody, Fields: []Field{required("label", String())}},
		{Name: PlaybackBody, Fields: []Field{
			required("playback", Opaque()),
			required("device_id", String()),
		}},
		memberEntity(),
		memberSettingsEntity(),
		{Name: QueueSong, Fields: []Field{
			required("spotifyTrackFull", Opaque()),
			required("votes", Integer(0)),
			required("voted", Bool()),
		}},
		{Name: Queue, Fields: []Field{required("tracks", ArrayOf(Ref(QueueSong)))}},
		{Name: Vote, Fields: []Field{required("track", String())}},
		{Name: CollectionInfo, Fields: []Field{
			required("collection", String()),
			required("type", String()),
		}},
		{Name: SearchRequest, Fields: []Field{
			optional("text", String()),
			optional("type", String()),
		}},
		{Name: Devices, Fields: []Field{required("devices", ArrayOf(Opaque()))}},
		{Name: CloseEvent, Fields: []Field{required("reason", Enum(models.CloseReasons...))}},
	} {
		c.entities[e.Name] = e
	}

	empty := Ref(EmptyRequest)
	success := Ref(SuccessConfirmation)
	for _, e := range []Endpoint{
		{http.MethodGet, PathLogin, empty, Ref(AuthURL)},
		{http.MethodGet, PathLogout, empty, success},
		{http.MethodGet, PathMe, empty, Ref(User)},
		{http.MethodPut, PathMe, Ref(UserDetails), Ref(User)},
		{http.MethodDelete, PathMe, empty, success},
		{http.MethodPut, PathJamCreate, empty, Ref(LabelBody)},
		{http.MethodGet, PathJam, empty, Ref(SessionDetails)},
		{http.MethodPut, PathJam, Ref(SessionSetting), Ref(SessionDetails)},
		{http.MethodGet, PathJamJoin, Ref(LabelBody), Ref(LabelBody)},
		{http.MethodGet, PathJamLeave, empty, success},
		{http.MethodGet, PathPlayback, empty, Ref(PlaybackBody)},
		{http.MethodPut, PathPlayback, Ref(PlaybackSettings), Ref(PlaybackBody)},
		{http.MethodGet, PathMembers, empty, ArrayOf(Ref(Member))},
		{http.MethodPut, PathMembers, ArrayOf(Ref(MemberSettings)), ArrayOf(Ref(Member))},
		{http.MethodPut, PathCollection, Ref(CollectionInfo), Ref(Queue)},
		{http.MethodDelete, PathQueueDelete, Ref(Vote), Ref(Queue)},
		{http.MethodGet, PathQueue, empty, Ref(Queue)},
		{http.MethodGet, PathVote, Ref(Vote), Ref(Queue)},
		{http.MethodGet, PathDevices, empty, Ref(Devices)},
		{http.MethodGet, PathPlaylists, empty, Opaque()},
		{http.MethodPut, PathSearch, Ref(SearchRequest), Opaque()},
	} {
		c.endpoints[e.Route()] = e
	}

	c.events[models.EventJam] = Ref(SessionDetails)
	c.events[models.EventQueue] = Ref(Queue)
	c.events[models.EventPlayback] = Ref(PlaybackBody)
	c.events[models.EventClose] = Enum(models.CloseReasons...)
	c.events[models.EventMembers] = ArrayOf(Ref(Member))

	return c
}
