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

const VenueColName = "venues"

type VenuesRepo interface {
	CreateVenue(ctx context.Context, venue *Venue) (*Venue, error)
	GetVenueByID(ctx context.Context, id primitive.ObjectID) (*Venue, error)
	ListVenues(ctx context.Context, status VenueStatus, offset, limit int) ([]*Venue, int, error)
	ListVenuesByOwner(ctx context.Context, ownerId primitive.ObjectID) ([]*Venue, error)
	ListAllVenues(ctx context.Context, offset, limit int) ([]*Venue, int, error)
	UpdateVenueStatus(ctx context.Context, id primitive.ObjectID, status VenueStatus, reason string) (*Venue, error)
}

func (mdb *MongodbRepo) CreateVenue(ctx context.Context, venue *Venue) (*Venue, error) {
	if err := venue.BeforeCreate(); err != nil {
		return nil, err
	}
	col, err := mdb.GetCollection(ctx, DbName, VenueColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	now := time.Now()
	venue.CreatedAt = now
	venue.UpdatedAt = now
	venue.Status = VenueStatusPending

	if _, err := col.InsertOne(ctx, venue); err != nil {
		return nil, fmt.Errorf("error inserting venue: %v", err)
	}
	return venue, nil
}

func (mdb *MongodbRepo) GetVenueByID(ctx context.Context, id primitive.ObjectID) (*Venue, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenueColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var venue Venue
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&venue)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding venue: %v", err)
	}
	return &venue, nil
}

func (mdb *MongodbRepo) ListVenues(ctx context.Context, status VenueStatus, offset, limit int) ([]*Venue, int, error) {
	return mdb.listVenues(ctx, bson.M{"status": status}, offset, limit)
}

func (mdb *MongodbRepo) ListAllVenues(ctx context.Context, offset, limit int) ([]*Venue, int, error) {
	return mdb.listVenues(ctx, bson.M{}, offset, limit)
}

func (mdb *MongodbRepo) listVenues(ctx context.Context, filter bson.M, offset, limit int) ([]*Venue, int, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenueColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting venues: %v", err)
	}

	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error finding venues: %v", err)
	}
	defer cursor.Close(ctx)

	var venues []*Venue
	for cursor.Next(ctx) {
		var v Venue
		if err := cursor.Decode(&v); err != nil {
			return nil, 0, fmt.Errorf("error decoding venue: %v", err)
		}
		venues = append(venues, &v)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("cursor error: %v", err)
	}

	return venues, int(total), nil
}

func (mdb *MongodbRepo) ListVenuesByOwner(ctx context.Context, ownerId primitive.ObjectID) ([]*Venue, error) {
	venues, _, err := mdb.listVenues(ctx, bson.M{"owner": ownerId}, 0, 100)
	return venues, err
}

func (mdb *MongodbRepo) UpdateVenueStatus(ctx context.Context, id primitive.ObjectID, status VenueStatus, reason string) (*Venue, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenueColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	set := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	if status == VenueStatusBlocked {
		set["block_reason"] = reason
	} else {
		set["block_reason"] = ""
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var venue Venue
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&venue)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating venue status: %v", err)
	}
	return &venue, nil
}
