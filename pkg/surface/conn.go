// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package surface

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vditor-wsl/vditor-bridge/pkg/bridge"
	"github.com/vditor-wsl/vditor-bridge/pkg/protocol"
	"k8s.io/klog/v2"
)

const (
	// image uploads travel as JSON byte arrays, four bytes per byte at most
	maxMessageSize = 128 << 20
	writeWait      = 10 * time.Second
)

// Conn is the editor surface behind one websocket connection
type Conn struct {
	ws *websocket.Conn

	writeMu sync.Mutex

	incoming  chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewConn starts reading messages from ws
func NewConn(ws *websocket.Conn) *Conn {
	ws.SetReadLimit(maxMessageSize)
	c := &Conn{
		ws:       ws,
		incoming: make(chan []byte),
		done:     make(chan struct{}),
	}
	go c.read()
	return c
}

func (c *Conn) read() {
	defer c.Close()
	for {
		kind, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				klog.Warningf("editor surface %s disconnected: %v", c.ws.RemoteAddr(), err)
			}
			return
		}
		if kind != websocket.TextMessage {
			klog.Warningf("ignoring binary message from editor surface %s", c.ws.RemoteAddr())
			continue
		}
		select {
		case c.incoming <- data:
		case <-c.done:
			return
		}
	}
}

// Receive returns the next well formed message. Malformed and unknown
// messages are logged and skipped.
func (c *Conn) Receive(ctx context.Context) (protocol.Message, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.done:
			return nil, bridge.ErrSurfaceClosed
		case data := <-c.incoming:
			msg, err := protocol.Decode(data)
			if err != nil {
				klog.Warningf("ignoring message from editor surface %s: %v", c.ws.RemoteAddr(), err)
				continue
			}
			return msg, nil
		}
	}
}

// Post sends msg to the surface
func (c *Conn) Post(msg protocol.Message) error {
	data, err := protocol.Encode(msg)
	if err != nil {
		return err
	}
	select {
	case <-c.done:
		return bridge.ErrSurfaceClosed
	default:
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err = c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	if err = c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("posting %s failed: %w", msg.Type(), err)
	}
	return nil
}

// Done is closed when the connection is closed
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// Close closes the connection. It is safe to call Close more than once.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		c.writeMu.Lock()
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		c.writeMu.Unlock()
		err = c.ws.Close()
	})
	return err
}
