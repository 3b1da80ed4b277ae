package store

import (
	"context"

	"conectify/module/messaging/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo stores messages and notifications in two collections.
type Mongo struct {
	MsgColl   *mongo.Collection
	NotifColl *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		MsgColl:   db.Collection(model.MsgTableName),
		NotifColl: db.Collection(model.NotificationTableName),
	}
}

var _ Store = (*Mongo)(nil)

func (s *Mongo) InsertMessage(ctx context.Context, m *model.Message) error {
	_, err := s.MsgColl.InsertOne(ctx, m)
	return err
}

func (s *Mongo) ListBetween(ctx context.Context, userA, userB string) ([]*model.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{model.MsgFieldSenderID: userA, model.MsgFieldReceiverID: userB},
		bson.M{model.MsgFieldSenderID: userB, model.MsgFieldReceiverID: userA},
	}}
	cur, err := s.MsgColl.Find(ctx, filter,
		options.Find().SetSort(bson.M{model.MsgFieldCreatedAt: 1}))
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	var out []*model.Message
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Mongo) ListUnread(ctx context.Context, userID string) ([]*model.Message, error) {
	cur, err := s.MsgColl.Find(ctx,
		bson.M{model.MsgFieldReceiverID: userID, model.MsgFieldIsRead: false},
		options.Find().SetSort(bson.M{model.MsgFieldCreatedAt: -1}))
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	var out []*model.Message
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Mongo) MarkConversationRead(ctx context.Context, readerID, senderID string) (int64, error) {
	res, err := s.MsgColl.UpdateMany(ctx,
		bson.M{
			model.MsgFieldReceiverID: readerID,
			model.MsgFieldSenderID:   senderID,
			model.MsgFieldIsRead:     false,
		},
		bson.M{"$set": bson.M{model.MsgFieldIsRead: true}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *Mongo) InsertNotification(ctx context.Context, n *model.Notification) error {
	_, err := s.NotifColl.InsertOne(ctx, n)
	return err
}

func (s *Mongo) ListNotifications(ctx context.Context, userID string) ([]*model.Notification, error) {
	cur, err := s.NotifColl.Find(ctx,
		bson.M{model.NotificationFieldUserID: userID},
		options.Find().SetSort(bson.M{model.NotificationFieldCreatedAt: -1}))
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	var out []*model.Notification
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Mongo) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	res, err := s.NotifColl.UpdateOne(ctx,
		bson.M{
			model.NotificationFieldUserID: userID,
			model.NotificationFieldID:     notificationID,
		},
		bson.M{"$set": bson.M{model.NotificationFieldIsRead: true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the query-path indexes; call once at startup.
func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.MsgColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: model.MsgFieldSenderID, Value: 1}, {Key: model.MsgFieldReceiverID, Value: 1}, {Key: model.MsgFieldCreatedAt, Value: 1}}},
		{Keys: bson.D{{Key: model.MsgFieldReceiverID, Value: 1}, {Key: model.MsgFieldIsRead, Value: 1}, {Key: model.MsgFieldCreatedAt, Value: -1}}},
	})
	if err != nil {
		return err
	}
	_, err = s.NotifColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: model.NotificationFieldUserID, Value: 1}, {Key: model.NotificationFieldCreatedAt, Value: -1}}},
		{Keys: bson.D{{Key: model.NotificationFieldID, Value: 1}}},
	})
	return err
}
