package store

import (
	"context"

	"conectify/module/messaging/model"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("store: record not found")

// Store is the durable collaborator behind the messaging endpoints. The
// live relay never touches it; a message is always stored here regardless
// of whether the receiver is connected.
type Store interface {
	InsertMessage(ctx context.Context, m *model.Message) error

	// ListBetween returns the full bidirectional history between two users,
	// ascending by creation time.
	ListBetween(ctx context.Context, userA, userB string) ([]*model.Message, error)

	// ListUnread returns every unread message addressed to userID, newest
	// first.
	ListUnread(ctx context.Context, userID string) ([]*model.Message, error)

	// MarkConversationRead flips the read flag on every unread message from
	// senderID to readerID. Idempotent; returns how many rows changed.
	MarkConversationRead(ctx context.Context, readerID, senderID string) (int64, error)

	InsertNotification(ctx context.Context, n *model.Notification) error

	// ListNotifications returns userID's notifications, newest first.
	ListNotifications(ctx context.Context, userID string) ([]*model.Notification, error)

	// MarkNotificationRead flips one notification's read flag. Idempotent;
	// ErrNotFound if the id does not belong to userID.
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
}
