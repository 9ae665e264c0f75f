package cart

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"laptopstore-backend/internal/domain"
)

type mongoRepo struct {
	col *mongo.Collection
}

func NewMongo(database *mongo.Database) Repository {
	return &mongoRepo{col: database.Collection("carts")}
}

func (r *mongoRepo) GetByUser(ctx context.Context, userID primitive.ObjectID) (domain.Cart, error) {
	var cart domain.Cart
	err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Cart{}, domain.ErrNotFound
	}
	return cart, err
}

func (r *mongoRepo) ReplaceItems(ctx context.Context, userID primitive.ObjectID, items []domain.CartItem, upsert bool) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	now := time.Now()
	update := bson.M{
		"$set":         bson.M{"items": items, "updatedAt": now},
		"$setOnInsert": bson.M{"userId": userID, "createdAt": now},
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"userId": userID}, update, options.Update().SetUpsert(upsert))
	if err != nil {
		return err
	}
	if !upsert && res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *mongoRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"userId": userID})
	return err
}
