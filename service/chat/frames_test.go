package chat

import (
	"encoding/json"
	"testing"
)

func TestParseLiveFrameMessage(t *testing.T) {
	raw := []byte(`{"type":"message","receiverId":"u2","data":{"senderId":"u1","content":"hey"}}`)
	f, err := ParseLiveFrame(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Kind() != KindMessage {
		t.Fatalf("kind = %v, want KindMessage", f.Kind())
	}
	if f.ReceiverID != "u2" {
		t.Fatalf("receiverId = %q, want u2", f.ReceiverID)
	}
	if f.Data["content"] != "hey" {
		t.Fatalf("data = %v", f.Data)
	}
}

func TestParseLiveFrameUnknownTypeIsIgnored(t *testing.T) {
	raw := []byte(`{"type":"typing","receiverId":"u2","data":{}}`)
	f, err := ParseLiveFrame(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Kind() != KindUnknown {
		t.Fatalf("kind = %v, want KindUnknown", f.Kind())
	}
}

func TestParseLiveFrameMalformed(t *testing.T) {
	if _, err := ParseLiveFrame([]byte(`{"type":`)); err == nil {
		t.Fatal("expected error for malformed frame")
	}
}

func TestBuildNewMessage(t *testing.T) {
	out, err := BuildNewMessage(map[string]any{"content": "hi"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["type"] != FrameTypeNewMessage {
		t.Fatalf("type = %v", got["type"])
	}
	data, ok := got["data"].(map[string]any)
	if !ok || data["content"] != "hi" {
		t.Fatalf("data = %v", got["data"])
	}
}
