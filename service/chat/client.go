package chat

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeDeadline = 5 * time.Second

// Client is one live connection. A single writer goroutine drains Send so
// concurrent relays never interleave writes on the socket.
type Client struct {
	ConnID string
	UserID string
	WS     *websocket.Conn
	Send   chan []byte

	done      chan struct{}
	closeOnce sync.Once
}

func NewClient(connID, userID string, ws *websocket.Conn, sendQueueSize int) *Client {
	return &Client{
		ConnID: connID,
		UserID: userID,
		WS:     ws,
		Send:   make(chan []byte, sendQueueSize),
		done:   make(chan struct{}),
	}
}

// IsOpen reports whether the connection can still accept frames.
func (c *Client) IsOpen() bool {
	select {
	case <-c.done:
		return false
	default:
		return true
	}
}

// Close makes the client unreachable and closes the socket. Safe to call
// more than once and from any goroutine.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.WS != nil {
			_ = c.WS.Close()
		}
	})
}

// enqueue offers a frame to the writer queue without blocking. A closed
// client or a full queue drops the frame; delivery is best effort.
func (c *Client) enqueue(data []byte) bool {
	if !c.IsOpen() {
		return false
	}
	select {
	case c.Send <- data:
		return true
	default:
		return false
	}
}

// writePump is the single writer; it exits when the client closes.
func (c *Client) writePump() {
	for {
		select {
		case <-c.done:
			return
		case data := <-c.Send:
			if err := c.WS.SetWriteDeadline(time.Now().Add(writeDeadline)); err != nil {
				c.Close()
				return
			}
			if err := c.WS.WriteMessage(websocket.TextMessage, data); err != nil {
				c.Close()
				return
			}
		}
	}
}
