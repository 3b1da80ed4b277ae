package service

import (
	"testing"
	"time"

	"conectify/module/messaging/model"
)

func TestSummarizeUnreadGroupsBySender(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	// newest first, as ListUnread returns
	unread := []*model.Message{
		{ServerMsgID: "3", SenderID: "s1", ReceiverID: "x", Content: "s1 newest", CreatedAt: t0.Add(2 * time.Minute)},
		{ServerMsgID: "2", SenderID: "s2", ReceiverID: "x", Content: "s2 only", CreatedAt: t0.Add(time.Minute)},
		{ServerMsgID: "1", SenderID: "s1", ReceiverID: "x", Content: "s1 older", CreatedAt: t0},
	}

	got := SummarizeUnread(unread)
	if len(got) != 2 {
		t.Fatalf("groups = %d, want 2", len(got))
	}

	if got[0].UserID != "s1" || got[0].UnreadCount != 2 {
		t.Fatalf("group[0] = %+v, want s1 with 2 unread", got[0])
	}
	if got[0].LastMessage.Content != "s1 newest" {
		t.Fatalf("group[0] last = %q, want the newest message", got[0].LastMessage.Content)
	}
	if got[1].UserID != "s2" || got[1].UnreadCount != 1 {
		t.Fatalf("group[1] = %+v, want s2 with 1 unread", got[1])
	}
	if got[1].LastMessage.Content != "s2 only" {
		t.Fatalf("group[1] last = %q", got[1].LastMessage.Content)
	}
}

func TestSummarizeUnreadEmpty(t *testing.T) {
	if got := SummarizeUnread(nil); len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}
