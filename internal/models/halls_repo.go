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

const HallColName = "halls"

type HallsRepo interface {
	CreateHall(ctx context.Context, hall *Hall) (*Hall, error)
	GetHallByID(ctx context.Context, id primitive.ObjectID) (*Hall, error)
	ListHallsByVenue(ctx context.Context, venueId primitive.ObjectID) ([]*Hall, error)
	UpdateHall(ctx context.Context, id primitive.ObjectID, update bson.M) (*Hall, error)
	DeleteHall(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateHall(ctx context.Context, hall *Hall) (*Hall, error) {
	if err := hall.BeforeCreate(); err != nil {
		return nil, err
	}
	col, err := mdb.GetCollection(ctx, DbName, HallColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	now := time.Now()
	hall.CreatedAt = now
	hall.UpdatedAt = now

	if _, err := col.InsertOne(ctx, hall); err != nil {
		return nil, fmt.Errorf("error inserting hall: %v", err)
	}
	return hall, nil
}

func (mdb *MongodbRepo) GetHallByID(ctx context.Context, id primitive.ObjectID) (*Hall, error) {
	col, err := mdb.GetCollection(ctx, DbName, HallColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var hall Hall
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&hall)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding hall: %v", err)
	}
	return &hall, nil
}

func (mdb *MongodbRepo) ListHallsByVenue(ctx context.Context, venueId primitive.ObjectID) ([]*Hall, error) {
	col, err := mdb.GetCollection(ctx, DbName, HallColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"venue": venueId})
	if err != nil {
		return nil, fmt.Errorf("error finding halls: %v", err)
	}
	defer cursor.Close(ctx)

	var halls []*Hall
	for cursor.Next(ctx) {
		var h Hall
		if err := cursor.Decode(&h); err != nil {
			return nil, fmt.Errorf("error decoding hall: %v", err)
		}
		halls = append(halls, &h)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return halls, nil
}

// UpdateHall applies a partial update. Callers build the $set document from
// whitelisted fields; this keeps patch semantics out of the storage layer.
func (mdb *MongodbRepo) UpdateHall(ctx context.Context, id primitive.ObjectID, update bson.M) (*Hall, error) {
	col, err := mdb.GetCollection(ctx, DbName, HallColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var hall Hall
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&hall)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating hall: %v", err)
	}
	return &hall, nil
}

func (mdb *MongodbRepo) DeleteHall(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DbName, HallColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting hall: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
