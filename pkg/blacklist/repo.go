package blacklist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection("blacklist"),
	}
}

// Add is effectively idempotent: Contains is an existence check, so a token
// inserted twice is no more revoked than one inserted once.
func (r *MongoRepo) Add(token string) error {
	ctx := context.TODO()

	_, err := r.collection.InsertOne(ctx, Entry{
		Token:     token,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	return nil
}

func (r *MongoRepo) Contains(token string) (bool, error) {
	ctx := context.TODO()

	err := r.collection.FindOne(ctx, bson.M{"token": token}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}

	return true, nil
}
