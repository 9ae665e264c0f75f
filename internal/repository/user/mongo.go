package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"laptopstore-backend/internal/domain"
)

type mongoRepo struct {
	col *mongo.Collection
}

func NewMongo(database *mongo.Database) Repository {
	return &mongoRepo{col: database.Collection("users")}
}

func (r *mongoRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.User{}, domain.ErrAlreadyExists
		}
		return domain.User{}, err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

func (r *mongoRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, domain.ErrNotFound
	}
	return u, err
}

func (r *mongoRepo) GetByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	var u domain.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, domain.ErrNotFound
	}
	return u, err
}

func (r *mongoRepo) ListNonAdmins(ctx context.Context) ([]domain.User, error) {
	cur, err := r.col.Find(ctx, bson.M{"isAdmin": false})
	if err != nil {
		return nil, err
	}
	var users []domain.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *mongoRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
