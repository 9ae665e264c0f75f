package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens a client and verifies the deployment is reachable.
func Connect(ctx context.Context, uri, name string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client.Database(name), nil
}

// EnsureIndexes creates the unique indexes the application relies on:
// one cart and one wishlist per user, unique emails, unique order ids.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	indexes := []struct {
		collection string
		keys       bson.D
	}{
		{"users", bson.D{{Key: "email", Value: 1}}},
		{"carts", bson.D{{Key: "userId", Value: 1}}},
		{"wishlists", bson.D{{Key: "userId", Value: 1}}},
		{"orders", bson.D{{Key: "orderId", Value: 1}}},
	}
	for _, idx := range indexes {
		_, err := database.Collection(idx.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    idx.keys,
			Options: unique,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
