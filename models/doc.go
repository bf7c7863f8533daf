// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the Go value types of the JamFactory wire contract.

These are plain serialization records. Which of them a deployment may send
or accept is decided by the schema variant (see package schema); the types
here are the union of all variants.

# Envelopes

  - EmptyRequest, EmptyResponse: {}
  - SuccessConfirmation: success
  - ErrorResponse: error, message (transport level, not part of the contract)

# Entities

  - User: identifier, display_name, type, joined_label, spotify_authorized
  - SessionDetails: label, name, active, voting_type (variant B and later)
  - QueueSong: spotifyTrackFull, votes, voted
  - Queue: tracks, in play order
  - Member: display_name, identifier, rights
  - Members: {members: [...]} envelope (variant C)
  - PlaybackBody: playback, device_id

Spotify-owned shapes (playback state, full tracks, devices, search results)
are carried as json.RawMessage and never inspected.

# Version-gated fields

Fields that exist only in some variants are pointers with omitempty, so an
absent value and an absent key are the same thing:

	SessionDetails.VotingType  // nil in A, required in B and C
	SessionSetting.VotingType  // rejected in A, optional in B and C

# Constants

User types and member rights:

	UserNew   = "New"
	UserGuest = "Guest"
	UserHost  = "Host"

Voting types:

	VotingSession = "session_voting"
	VotingIP      = "ip_voting"

Socket events:

	EventJam, EventQueue, EventPlayback, EventClose, EventMembers

Close reasons:

	CloseHost     = "host"
	CloseInactive = "inactive"
	CloseWarning  = "warning"

Every enumeration rejects unknown values when unmarshaled.
*/
package models
