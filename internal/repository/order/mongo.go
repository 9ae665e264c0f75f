package order

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
	return &mongoRepo{col: database.Collection("orders")}
}

func (r *mongoRepo) Insert(ctx context.Context, o domain.Order) (domain.Order, error) {
	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Order{}, domain.ErrAlreadyExists
		}
		return domain.Order{}, err
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return o, nil
}

func (r *mongoRepo) GetByOrderID(ctx context.Context, orderID string) (domain.Order, error) {
	var o domain.Order
	err := r.col.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Order{}, domain.ErrNotFound
	}
	return o, err
}

func (r *mongoRepo) GetByOrderIDForUser(ctx context.Context, orderID string, userID primitive.ObjectID) (domain.Order, error) {
	var o domain.Order
	err := r.col.FindOne(ctx, bson.M{"orderId": orderID, "userId": userID}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Order{}, domain.ErrNotFound
	}
	return o, err
}

func (r *mongoRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *mongoRepo) List(ctx context.Context, f Filter) ([]domain.Order, error) {
	return r.find(ctx, buildQuery(f))
}

func (r *mongoRepo) find(ctx context.Context, query bson.M) ([]domain.Order, error) {
	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var orders []domain.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *mongoRepo) UpdateStatus(ctx context.Context, orderID, status string) (domain.Order, error) {
	var o domain.Order
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"orderId": orderID},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Order{}, domain.ErrNotFound
	}
	return o, err
}

func (r *mongoRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}

// buildQuery translates a Filter into a mongo query. Search matches orderId
// and the customer's name/email case-insensitively; date and amount ranges
// are inclusive.
func buildQuery(f Filter) bson.M {
	query := bson.M{}

	if f.Search != "" {
		regex := primitive.Regex{Pattern: f.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"orderId": regex},
			bson.M{"customerInfo.fullName": regex},
			bson.M{"customerInfo.email": regex},
		}
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.PaymentMethod != "" {
		query["paymentMethod"] = f.PaymentMethod
	}
	if f.DateFrom != nil || f.DateTo != nil {
		dateRange := bson.M{}
		if f.DateFrom != nil {
			dateRange["$gte"] = *f.DateFrom
		}
		if f.DateTo != nil {
			dateRange["$lte"] = *f.DateTo
		}
		query["orderDate"] = dateRange
	}
	if f.AmountMin != nil || f.AmountMax != nil {
		amountRange := bson.M{}
		if f.AmountMin != nil {
			amountRange["$gte"] = *f.AmountMin
		}
		if f.AmountMax != nil {
			amountRange["$lte"] = *f.AmountMax
		}
		query["grandTotal"] = amountRange
	}
	return query
}
