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

const (
	FoodColName         = "foods"
	FoodCategoryColName = "food_categories"
)

type FoodsRepo interface {
	AddFood(ctx context.Context, food *Food) (*Food, error)
	GetFoodByID(ctx context.Context, id primitive.ObjectID) (*Food, error)
	GetFoodsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Food, error)
	ListFoodsByVenue(ctx context.Context, venueId primitive.ObjectID) ([]*Food, error)
	UpdateFood(ctx context.Context, id primitive.ObjectID, update bson.M) (*Food, error)
	DeleteFood(ctx context.Context, id primitive.ObjectID) error
	CreateFoodCategory(ctx context.Context, category *FoodCategory) (*FoodCategory, error)
	GetFoodCategoryByID(ctx context.Context, id primitive.ObjectID) (*FoodCategory, error)
	ListFoodCategories(ctx context.Context, venueId primitive.ObjectID) ([]*FoodCategory, error)
	DeleteFoodCategory(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) AddFood(ctx context.Context, food *Food) (*Food, error) {
	if err := food.BeforeCreate(); err != nil {
		return nil, err
	}
	col, err := mdb.GetCollection(ctx, DbName, FoodColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	now := time.Now()
	food.CreatedAt = now
	food.UpdatedAt = now

	if _, err := col.InsertOne(ctx, food); err != nil {
		return nil, fmt.Errorf("error inserting food: %v", err)
	}
	return food, nil
}

func (mdb *MongodbRepo) GetFoodByID(ctx context.Context, id primitive.ObjectID) (*Food, error) {
	col, err := mdb.GetCollection(ctx, DbName, FoodColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var food Food
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding food: %v", err)
	}
	return &food, nil
}

func (mdb *MongodbRepo) GetFoodsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Food, error) {
	if len(ids) == 0 {
		return []*Food{}, nil
	}
	return mdb.listFoods(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (mdb *MongodbRepo) ListFoodsByVenue(ctx context.Context, venueId primitive.ObjectID) ([]*Food, error) {
	return mdb.listFoods(ctx, bson.M{"venue": venueId})
}

func (mdb *MongodbRepo) listFoods(ctx context.Context, filter bson.M) ([]*Food, error) {
	col, err := mdb.GetCollection(ctx, DbName, FoodColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding foods: %v", err)
	}
	defer cursor.Close(ctx)

	var foods []*Food
	for cursor.Next(ctx) {
		var f Food
		if err := cursor.Decode(&f); err != nil {
			return nil, fmt.Errorf("error decoding food: %v", err)
		}
		foods = append(foods, &f)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return foods, nil
}

func (mdb *MongodbRepo) UpdateFood(ctx context.Context, id primitive.ObjectID, update bson.M) (*Food, error) {
	col, err := mdb.GetCollection(ctx, DbName, FoodColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var food Food
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating food: %v", err)
	}
	return &food, nil
}

func (mdb *MongodbRepo) DeleteFood(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DbName, FoodColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting food: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) CreateFoodCategory(ctx context.Context, category *FoodCategory) (*FoodCategory, error) {
	if err := category.BeforeCreate(); err != nil {
		return nil, err
	}
	col, err := mdb.GetCollection(ctx, DbName, FoodCategoryColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	category.CreatedAt = time.Now()
	if _, err := col.InsertOne(ctx, category); err != nil {
		return nil, fmt.Errorf("error inserting food category: %v", err)
	}
	return category, nil
}

func (mdb *MongodbRepo) GetFoodCategoryByID(ctx context.Context, id primitive.ObjectID) (*FoodCategory, error) {
	col, err := mdb.GetCollection(ctx, DbName, FoodCategoryColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var category FoodCategory
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding food category: %v", err)
	}
	return &category, nil
}

func (mdb *MongodbRepo) ListFoodCategories(ctx context.Context, venueId primitive.ObjectID) ([]*FoodCategory, error) {
	col, err := mdb.GetCollection(ctx, DbName, FoodCategoryColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"venue": venueId})
	if err != nil {
		return nil, fmt.Errorf("error finding food categories: %v", err)
	}
	defer cursor.Close(ctx)

	var categories []*FoodCategory
	for cursor.Next(ctx) {
		var fc FoodCategory
		if err := cursor.Decode(&fc); err != nil {
			return nil, fmt.Errorf("error decoding food category: %v", err)
		}
		categories = append(categories, &fc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return categories, nil
}

func (mdb *MongodbRepo) DeleteFoodCategory(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DbName, FoodCategoryColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting food category: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
