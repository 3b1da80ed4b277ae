package model

import "time"

const (
	MsgTableName = "messages"

	// Message type tags. Only text flows through the current clients but the
	// column is free-form on purpose.
	MsgTypeText = "text"
)

// Field names used in store queries, kept next to the struct so the two
// cannot drift.
const (
	MsgFieldServerMsgID = "server_msg_id"
	MsgFieldSenderID    = "sender_id"
	MsgFieldReceiverID  = "receiver_id"
	MsgFieldIsRead      = "is_read"
	MsgFieldCreatedAt   = "created_at"
)

// Message is one durable chat message. Immutable once created except for
// the read flag, which only ever moves unread -> read.
type Message struct {
	ServerMsgID string    `bson:"server_msg_id" json:"id"`
	SenderID    string    `bson:"sender_id" json:"senderId"`
	ReceiverID  string    `bson:"receiver_id" json:"receiverId"`
	Content     string    `bson:"content" json:"content"`
	Type        string    `bson:"type" json:"type"`
	IsRead      bool      `bson:"is_read" json:"isRead"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

func (*Message) TableName() string { return MsgTableName }

// ConversationSummary is the derived per-correspondent view: the newest
// unread message from that correspondent plus how many are unread. Never
// persisted.
type ConversationSummary struct {
	UserID      string   `json:"userId"`
	LastMessage *Message `json:"lastMessage"`
	UnreadCount int      `json:"unreadCount"`
}
