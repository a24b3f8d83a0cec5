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

const GalleryColName = "galleries"

type GalleryRepo interface {
	AddGalleryImages(ctx context.Context, ownerId primitive.ObjectID, images []GalleryImage) (*Gallery, error)
	GetGalleryByOwner(ctx context.Context, ownerId primitive.ObjectID) (*Gallery, error)
	RemoveGalleryImage(ctx context.Context, ownerId, imageId primitive.ObjectID) (*Gallery, error)
	ClearGallery(ctx context.Context, ownerId primitive.ObjectID) (*Gallery, error)
}

func (mdb *MongodbRepo) AddGalleryImages(ctx context.Context, ownerId primitive.ObjectID, images []GalleryImage) (*Gallery, error) {
	col, err := mdb.GetCollection(ctx, DbName, GalleryColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	now := time.Now()
	filter := bson.M{"owner": ownerId}
	update := bson.M{
		"$push": bson.M{
			"images": bson.M{"$each": images},
		},
		"$set": bson.M{
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"owner":      ownerId,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var gallery Gallery
	if err := col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&gallery); err != nil {
		return nil, fmt.Errorf("error upserting gallery: %v", err)
	}
	return &gallery, nil
}

func (mdb *MongodbRepo) GetGalleryByOwner(ctx context.Context, ownerId primitive.ObjectID) (*Gallery, error) {
	col, err := mdb.GetCollection(ctx, DbName, GalleryColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var gallery Gallery
	err = col.FindOne(ctx, bson.M{"owner": ownerId}).Decode(&gallery)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding gallery: %v", err)
	}
	return &gallery, nil
}

// RemoveGalleryImage pulls the image from the array regardless of whether it
// is present, so repeated deletes of the same id are harmless.
func (mdb *MongodbRepo) RemoveGalleryImage(ctx context.Context, ownerId, imageId primitive.ObjectID) (*Gallery, error) {
	col, err := mdb.GetCollection(ctx, DbName, GalleryColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"owner": ownerId}
	update := bson.M{
		"$pull": bson.M{"images": bson.M{"_id": imageId}},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var gallery Gallery
	err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&gallery)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error removing gallery image: %v", err)
	}
	return &gallery, nil
}

func (mdb *MongodbRepo) ClearGallery(ctx context.Context, ownerId primitive.ObjectID) (*Gallery, error) {
	col, err := mdb.GetCollection(ctx, DbName, GalleryColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"owner": ownerId}
	update := bson.M{
		"$set": bson.M{
			"images":     []GalleryImage{},
			"updated_at": time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var gallery Gallery
	err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&gallery)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error clearing gallery: %v", err)
	}
	return &gallery, nil
}
