package product

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"laptopstore-backend/internal/domain"
)

// Repository persists catalog entries.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (domain.Product, error)
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	// Update replaces the catalog fields of an existing product and returns
	// the updated record; domain.ErrNotFound when the id is unknown.
	Update(ctx context.Context, id primitive.ObjectID, p domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
