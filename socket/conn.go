// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package socket

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/jamfactoryapp/jamfactory-contract/schema"
)

// Conn reads and writes notifications of one contract variant over a
// websocket. Writes are serialized; reads must come from one goroutine.
type Conn struct {
	ws       *websocket.Conn
	contract *schema.Contract
	sendMu   sync.Mutex
}

func NewConn(ws *websocket.Conn, contract *schema.Contract) *Conn {
	return &Conn{ws: ws, contract: contract}
}

// Send writes msg as one text frame.
func (c *Conn) Send(msg Message) error {
	data, err := Encode(c.contract, msg)
	if err != nil {
		return err
	}
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to write %s notification: %w", msg.Event(), err)
	}
	return nil
}

// Receive blocks for the next frame and decodes it.
func (c *Conn) Receive() (Notification, error) {
	kind, data, err := c.ws.ReadMessage()
	if err != nil {
		return Notification{}, fmt.Errorf("failed to read notification: %w", err)
	}
	if kind != websocket.TextMessage {
		return Notification{}, fmt.Errorf("%w: unexpected frame type %d", schema.ErrInvalidPayload, kind)
	}
	return Decode(c.contract, data)
}

// Close sends a normal closure and closes the connection.
func (c *Conn) Close() error {
	c.sendMu.Lock()
	_ = c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.sendMu.Unlock()
	return c.ws.Close()
}
