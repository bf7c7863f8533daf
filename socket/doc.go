// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package socket encodes and decodes JamFactory socket notifications.

Every frame is {event, message}. The message's shape is fully determined by
the event, so the package models it as a sealed tagged union:

	JamMessage       jam       SessionDetails
	QueueMessage     queue     Queue
	PlaybackMessage  playback  PlaybackBody
	CloseMessage     close     "host" | "inactive" | "warning"
	MembersMessage   members   Member[] in A, {members: Member[]} in C

The event is never stored separately from the payload:

	data, err := socket.Encode(contract, socket.CloseMessage(models.CloseInactive))

Decode reads the event first and only then unmarshals the message into the
event's type. A message shaped like a different event's payload fails
validation instead of decoding into zero values:

	n, err := socket.Decode(contract, data)
	switch m := n.Message.(type) {
	case socket.CloseMessage:
		...
	}

Conn wraps a gorilla/websocket connection to send and receive whole
notifications.
*/
package socket
