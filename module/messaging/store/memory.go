package store

import (
	"context"
	"sort"
	"sync"

	"conectify/module/messaging/model"
)

// Memory is the in-process Store used by tests and by the "memory" storage
// driver for local runs. Same semantics as Mongo, nothing survives a
// restart.
type Memory struct {
	mu       sync.RWMutex
	messages []*model.Message
	notifs   []*model.Notification
}

func NewMemory() *Memory { return &Memory{} }

var _ Store = (*Memory)(nil)

func (s *Memory) InsertMessage(_ context.Context, m *model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *m
	s.messages = append(s.messages, &cp)
	return nil
}

func (s *Memory) ListBetween(_ context.Context, userA, userB string) ([]*model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.Message
	for _, m := range s.messages {
		if (m.SenderID == userA && m.ReceiverID == userB) ||
			(m.SenderID == userB && m.ReceiverID == userA) {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Memory) ListUnread(_ context.Context, userID string) ([]*model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.Message
	for _, m := range s.messages {
		if m.ReceiverID == userID && !m.IsRead {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Memory) MarkConversationRead(_ context.Context, readerID, senderID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, m := range s.messages {
		if m.ReceiverID == readerID && m.SenderID == senderID && !m.IsRead {
			m.IsRead = true
			n++
		}
	}
	return n, nil
}

func (s *Memory) InsertNotification(_ context.Context, n *model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *n
	s.notifs = append(s.notifs, &cp)
	return nil
}

func (s *Memory) ListNotifications(_ context.Context, userID string) ([]*model.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.Notification
	for _, n := range s.notifs {
		if n.UserID == userID {
			cp := *n
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Memory) MarkNotificationRead(_ context.Context, userID, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notifs {
		if n.UserID == userID && n.NotificationID == notificationID {
			n.IsRead = true
			return nil
		}
	}
	return ErrNotFound
}
