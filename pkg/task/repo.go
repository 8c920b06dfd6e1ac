package task

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

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection("tasks"),
	}
}

func (r *MongoRepo) Create(task *Task) error {
	ctx := context.TODO()

	result, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		task.MongoID = oid
		task.ID = oid.Hex()
	} else {
		return errors.New("failed to convert inserted ID to ObjectID")
	}

	return nil
}

// GetAllByUser surfaces store failures instead of folding them into an empty
// list; an outage must not look like "you have no tasks".
func (r *MongoRepo) GetAllByUser(userID string) ([]*Task, error) {
	ctx := context.TODO()

	cursor, err := r.collection.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []*Task
	for cursor.Next(ctx) {
		var t Task
		if cursor.Decode(&t) == nil {
			t.ID = t.MongoID.Hex()
			tasks = append(tasks, &t)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Every filter carries the owner id: another user's task and a missing task
// are the same ErrNotFound.
func (r *MongoRepo) GetByID(id, userID string) (*Task, error) {
	ctx := context.TODO()
	var t Task

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	err = r.collection.FindOne(ctx, bson.M{"_id": objectID, "user": userID}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}

	t.ID = t.MongoID.Hex()
	return &t, nil
}

func (r *MongoRepo) Update(id, userID string, form *UpdateForm) (*Task, error) {
	ctx := context.TODO()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if form.Title != nil {
		set["title"] = *form.Title
	}
	if form.Description != nil {
		set["description"] = *form.Description
	}
	if form.DueDate != nil {
		set["due_date"] = *form.DueDate
	}
	if form.Priority != nil {
		set["priority"] = *form.Priority
	}
	if form.Status != nil {
		set["status"] = *form.Status
	}

	var updated Task
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID, "user": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	updated.ID = updated.MongoID.Hex()
	return &updated, nil
}

func (r *MongoRepo) Delete(id, userID string) error {
	ctx := context.TODO()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID, "user": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
