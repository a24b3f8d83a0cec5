package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const NotificationColName = "notifications"

type NotificationsRepo interface {
	CreateNotification(ctx context.Context, n *Notification) (*Notification, error)
	ListUnreadNotifications(ctx context.Context, recipientId primitive.ObjectID) ([]*Notification, error)
	MarkNotificationRead(ctx context.Context, recipientId, id primitive.ObjectID) (*Notification, error)
}

func (mdb *MongodbRepo) CreateNotification(ctx context.Context, n *Notification) (*Notification, error) {
	if err := n.BeforeCreate(); err != nil {
		return nil, err
	}
	col, err := mdb.GetCollection(ctx, DbName, NotificationColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	n.CreatedAt = time.Now()
	if _, err := col.InsertOne(ctx, n); err != nil {
		return nil, fmt.Errorf("error inserting notification: %v", err)
	}
	return n, nil
}

func (mdb *MongodbRepo) ListUnreadNotifications(ctx context.Context, recipientId primitive.ObjectID) ([]*Notification, error) {
	col, err := mdb.GetCollection(ctx, DbName, NotificationColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{"recipient": recipientId, "is_read": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding notifications: %v", err)
	}
	defer cursor.Close(ctx)

	var notifications []*Notification
	for cursor.Next(ctx) {
		var n Notification
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("error decoding notification: %v", err)
		}
		notifications = append(notifications, &n)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return notifications, nil
}

// MarkNotificationRead scopes the filter to the recipient so a user cannot
// mark someone else's notification.
func (mdb *MongodbRepo) MarkNotificationRead(ctx context.Context, recipientId, id primitive.ObjectID) (*Notification, error) {
	col, err := mdb.GetCollection(ctx, DbName, NotificationColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var n Notification
	err = col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "recipient": recipientId},
		bson.M{"$set": bson.M{"is_read": true}},
		opts,
	).Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error marking notification read: %v", err)
	}
	return &n, nil
}
