package product

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
	return &mongoRepo{col: database.Collection("products")}
}

func (r *mongoRepo) List(ctx context.Context) ([]domain.Product, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *mongoRepo) GetByID(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	var p domain.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, err
}

func (r *mongoRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

func (r *mongoRepo) Update(ctx context.Context, id primitive.ObjectID, p domain.Product) (domain.Product, error) {
	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"category":    p.Category,
		"price":       p.Price,
		"stock":       p.Stock,
		"description": p.Description,
		"imageUrl":    p.ImageURL,
	}}
	var updated domain.Product
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Product{}, domain.ErrNotFound
	}
	return updated, err
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
