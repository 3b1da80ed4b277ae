package chat

import (
	"encoding/json"
	"testing"
)

func newTestClient(connID, userID string) *Client {
	// nil websocket: registry and relay never touch the socket directly,
	// delivery lands in the Send queue.
	return NewClient(connID, userID, nil, 8)
}

func drain(c *Client) [][]byte {
	var out [][]byte
	for {
		select {
		case d := <-c.Send:
			out = append(out, d)
		default:
			return out
		}
	}
}

func TestRegisterReplacesExisting(t *testing.T) {
	m := NewConnManager("gw-test")
	r := NewRelay(m)

	c1 := newTestClient("c1", "u1")
	c2 := newTestClient("c2", "u1")

	m.Register(c1)
	m.Register(c2)

	got, ok := m.Lookup("u1")
	if !ok || got != c2 {
		t.Fatalf("lookup(u1) = %v, want c2", got)
	}
	if c1.IsOpen() {
		t.Fatal("replaced connection should be closed")
	}
	if m.Count() != 1 {
		t.Fatalf("count = %d, want 1", m.Count())
	}

	r.Deliver("u1", map[string]any{"content": "hi"})
	if n := len(drain(c2)); n != 1 {
		t.Fatalf("c2 deliveries = %d, want 1", n)
	}
	if n := len(drain(c1)); n != 0 {
		t.Fatalf("c1 deliveries = %d, want 0", n)
	}
}

func TestUnregisterRemovesReachability(t *testing.T) {
	m := NewConnManager("gw-test")
	r := NewRelay(m)

	c1 := newTestClient("c1", "u1")
	m.Register(c1)
	m.Unregister(c1)

	if _, ok := m.Lookup("u1"); ok {
		t.Fatal("lookup(u1) should be absent after unregister")
	}
	if c1.IsOpen() {
		t.Fatal("unregistered connection should be closed")
	}

	// relay to the removed user is a silent no-op
	r.Deliver("u1", map[string]any{"content": "late"})
	if n := len(drain(c1)); n != 0 {
		t.Fatalf("deliveries after unregister = %d, want 0", n)
	}
}

func TestUnregisterStaleClientKeepsReplacement(t *testing.T) {
	m := NewConnManager("gw-test")

	c1 := newTestClient("c1", "u1")
	c2 := newTestClient("c2", "u1")
	m.Register(c1)
	m.Register(c2)

	// c1's close event fires after it was already replaced; it must not
	// evict c2's entry.
	m.Unregister(c1)

	got, ok := m.Lookup("u1")
	if !ok || got != c2 {
		t.Fatalf("lookup(u1) = %v, want c2 to survive stale unregister", got)
	}
}

func TestRelayToUnknownReceiverIsNoop(t *testing.T) {
	m := NewConnManager("gw-test")
	r := NewRelay(m)

	// must not panic, error, or register anything
	r.Deliver("ghost", map[string]any{"content": "hello"})
	if m.Count() != 0 {
		t.Fatalf("count = %d, want 0", m.Count())
	}
}

func TestRelaySkipsClosedClient(t *testing.T) {
	m := NewConnManager("gw-test")
	r := NewRelay(m)

	c1 := newTestClient("c1", "u1")
	m.Register(c1)
	c1.Close()

	r.Deliver("u1", map[string]any{"content": "hi"})
	if n := len(drain(c1)); n != 0 {
		t.Fatalf("deliveries to closed client = %d, want 0", n)
	}
}

func TestDeliverWrapsPayloadInNewMessageFrame(t *testing.T) {
	m := NewConnManager("gw-test")
	r := NewRelay(m)

	c1 := newTestClient("c1", "u2")
	m.Register(c1)

	r.Deliver("u2", map[string]any{"senderId": "u1", "content": "hello"})

	frames := drain(c1)
	if len(frames) != 1 {
		t.Fatalf("deliveries = %d, want 1", len(frames))
	}
	var got struct {
		Type string         `json:"type"`
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(frames[0], &got); err != nil {
		t.Fatalf("unmarshal outbound frame: %v", err)
	}
	if got.Type != FrameTypeNewMessage {
		t.Fatalf("type = %q, want %q", got.Type, FrameTypeNewMessage)
	}
	if got.Data["content"] != "hello" || got.Data["senderId"] != "u1" {
		t.Fatalf("data = %v, original payload not carried through", got.Data)
	}
}

func TestDropWhenQueueFull(t *testing.T) {
	m := NewConnManager("gw-test")
	r := NewRelay(m)

	c1 := NewClient("c1", "u1", nil, 1)
	m.Register(c1)

	r.Deliver("u1", map[string]any{"n": 1})
	r.Deliver("u1", map[string]any{"n": 2}) // queue full, dropped

	if n := len(drain(c1)); n != 1 {
		t.Fatalf("deliveries = %d, want 1 (second frame dropped)", n)
	}
}
