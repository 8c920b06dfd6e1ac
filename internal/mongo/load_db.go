package mongo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/token"
)

func LoadDB(uri, dbName string) *driver.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := driver.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal(err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Cannot connect to MongoDB:", err)
	}

	db := client.Database(dbName)
	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal("Cannot create indexes:", err)
	}

	return db
}

// ensureIndexes sets up the two constraints the application leans on: the
// store enforces email uniqueness, and the store purges blacklist entries
// once they outlive the token lifetime.
func ensureIndexes(ctx context.Context, db *driver.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, driver.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("blacklist").Indexes().CreateOne(ctx, driver.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(token.TTL.Seconds())),
	})
	return err
}
