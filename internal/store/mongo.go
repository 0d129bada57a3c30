package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoKV backs the store with a single MongoDB collection of
// {_id, value} documents.
type MongoKV struct {
	coll *mongo.Collection
}

// NewMongoKV wraps a collection on an already connected database.
func NewMongoKV(db *mongo.Database) *MongoKV {
	return &MongoKV{coll: db.Collection("app_state")}
}

type kvDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

func (m *MongoKV) Get(ctx context.Context, key string) (string, error) {
	var doc kvDocument
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return doc.Value, nil
}

func (m *MongoKV) Set(ctx context.Context, key, value string) error {
	_, err := m.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		kvDocument{Key: key, Value: value},
		options.Replace().SetUpsert(true))
	return err
}

func (m *MongoKV) Del(ctx context.Context, keys ...string) error {
	_, err := m.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": keys}})
	return err
}
