package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const DbName = "easyevent"

var Validate = validator.New()

type MongodbRepo struct {
	mongodbClient *mongo.Client
}

func MongodbNewRepo(mongodbClient *mongo.Client) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, dbName, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	col := mdb.mongodbClient.Database(dbName).Collection(colName)
	return col, nil
}

// ParseObjectID converts a path or token id into an ObjectID. Trims spaces
// and surrounding quotes which may occur when clients pass values as JSON
// strings or templates.
func ParseObjectID(s string) (primitive.ObjectID, error) {
	s = strings.Trim(strings.TrimSpace(s), "\"'")
	return primitive.ObjectIDFromHex(s)
}
