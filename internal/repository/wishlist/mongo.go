package wishlist

import (
	"context"
	"errors"

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
	return &mongoRepo{col: database.Collection("wishlists")}
}

func (r *mongoRepo) GetByUser(ctx context.Context, userID primitive.ObjectID) (domain.Wishlist, error) {
	var w domain.Wishlist
	err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&w)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Wishlist{}, domain.ErrNotFound
	}
	return w, err
}

func (r *mongoRepo) ReplaceItems(ctx context.Context, userID primitive.ObjectID, items []domain.WishlistItem, upsert bool) error {
	if items == nil {
		items = []domain.WishlistItem{}
	}
	update := bson.M{
		"$set":         bson.M{"items": items},
		"$setOnInsert": bson.M{"userId": userID},
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
