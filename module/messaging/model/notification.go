package model

import "time"

const (
	NotificationTableName = "notifications"

	NotificationKindMessage = "message"
)

const (
	NotificationFieldID        = "notification_id"
	NotificationFieldUserID    = "user_id"
	NotificationFieldIsRead    = "is_read"
	NotificationFieldCreatedAt = "created_at"
)

// Notification is the persisted inbox entry shown on dashboards. RelatedID
// points at the originating record (the message id for kind "message").
type Notification struct {
	NotificationID string    `bson:"notification_id" json:"id"`
	UserID         string    `bson:"user_id" json:"userId"`
	Kind           string    `bson:"kind" json:"kind"`
	Title          string    `bson:"title" json:"title"`
	Body           string    `bson:"body" json:"body"`
	RelatedID      string    `bson:"related_id" json:"relatedId"`
	IsRead         bool      `bson:"is_read" json:"isRead"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

func (*Notification) TableName() string { return NotificationTableName }
