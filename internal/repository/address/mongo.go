package address

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
	return &mongoRepo{col: database.Collection("addresses")}
}

func (r *mongoRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Address, error) {
	cur, err := r.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	var addresses []domain.Address
	if err := cur.All(ctx, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *mongoRepo) Create(ctx context.Context, a domain.Address) (domain.Address, error) {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return domain.Address{}, err
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return a, nil
}

func (r *mongoRepo) Update(ctx context.Context, id, userID primitive.ObjectID, a domain.Address) (domain.Address, error) {
	update := bson.M{"$set": bson.M{
		"fullName":     a.FullName,
		"addressLine1": a.AddressLine1,
		"addressLine2": a.AddressLine2,
		"city":         a.City,
		"state":        a.State,
		"zipCode":      a.ZipCode,
		"phoneNumber":  a.PhoneNumber,
		"isDefault":    a.IsDefault,
	}}
	var updated domain.Address
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id, "userId": userID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Address{}, domain.ErrNotFound
	}
	return updated, err
}

func (r *mongoRepo) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *mongoRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
