package wishlist

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"laptopstore-backend/internal/domain"
)

// Repository persists per-user wishlist documents, replaced wholesale like
// carts.
type Repository interface {
	// GetByUser returns domain.ErrNotFound when the user has no wishlist yet.
	GetByUser(ctx context.Context, userID primitive.ObjectID) (domain.Wishlist, error)
	ReplaceItems(ctx context.Context, userID primitive.ObjectID, items []domain.WishlistItem, upsert bool) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}
