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

const TemplateColName = "agreement_templates"

type TemplatesRepo interface {
	CreateTemplate(ctx context.Context, tpl *AgreementTemplate) (*AgreementTemplate, error)
	GetTemplateByID(ctx context.Context, id primitive.ObjectID) (*AgreementTemplate, error)
	ListTemplatesByOwner(ctx context.Context, ownerId primitive.ObjectID) ([]*AgreementTemplate, error)
	UpdateTemplate(ctx context.Context, id primitive.ObjectID, update bson.M) (*AgreementTemplate, error)
	SetDefaultTemplate(ctx context.Context, ownerId, id primitive.ObjectID) (*AgreementTemplate, error)
	DeleteTemplate(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateTemplate(ctx context.Context, tpl *AgreementTemplate) (*AgreementTemplate, error) {
	if err := tpl.BeforeCreate(); err != nil {
		return nil, err
	}
	col, err := mdb.GetCollection(ctx, DbName, TemplateColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	now := time.Now()
	tpl.CreatedAt = now
	tpl.UpdatedAt = now

	// A new default demotes any existing one first.
	if tpl.IsDefault {
		if err := mdb.clearDefaultTemplate(ctx, col, tpl.OwnerID); err != nil {
			return nil, err
		}
	}

	if _, err := col.InsertOne(ctx, tpl); err != nil {
		return nil, fmt.Errorf("error inserting template: %v", err)
	}
	return tpl, nil
}

func (mdb *MongodbRepo) GetTemplateByID(ctx context.Context, id primitive.ObjectID) (*AgreementTemplate, error) {
	col, err := mdb.GetCollection(ctx, DbName, TemplateColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var tpl AgreementTemplate
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&tpl)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding template: %v", err)
	}
	return &tpl, nil
}

func (mdb *MongodbRepo) ListTemplatesByOwner(ctx context.Context, ownerId primitive.ObjectID) ([]*AgreementTemplate, error) {
	col, err := mdb.GetCollection(ctx, DbName, TemplateColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{"owner": ownerId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding templates: %v", err)
	}
	defer cursor.Close(ctx)

	var templates []*AgreementTemplate
	for cursor.Next(ctx) {
		var t AgreementTemplate
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("error decoding template: %v", err)
		}
		templates = append(templates, &t)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return templates, nil
}

func (mdb *MongodbRepo) UpdateTemplate(ctx context.Context, id primitive.ObjectID, update bson.M) (*AgreementTemplate, error) {
	col, err := mdb.GetCollection(ctx, DbName, TemplateColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var tpl AgreementTemplate
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&tpl)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating template: %v", err)
	}
	return &tpl, nil
}

// SetDefaultTemplate demotes the owner's current default and promotes the
// given template in two steps. Worst case on a crash between the steps is no
// default at all, never two.
func (mdb *MongodbRepo) SetDefaultTemplate(ctx context.Context, ownerId, id primitive.ObjectID) (*AgreementTemplate, error) {
	col, err := mdb.GetCollection(ctx, DbName, TemplateColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if err := mdb.clearDefaultTemplate(ctx, col, ownerId); err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	set := bson.M{"is_default": true, "updated_at": time.Now()}

	var tpl AgreementTemplate
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id, "owner": ownerId}, bson.M{"$set": set}, opts).Decode(&tpl)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error setting default template: %v", err)
	}
	return &tpl, nil
}

func (mdb *MongodbRepo) clearDefaultTemplate(ctx context.Context, col *mongo.Collection, ownerId primitive.ObjectID) error {
	_, err := col.UpdateMany(ctx,
		bson.M{"owner": ownerId, "is_default": true},
		bson.M{"$set": bson.M{"is_default": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("error clearing default template: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) DeleteTemplate(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DbName, TemplateColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting template: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
