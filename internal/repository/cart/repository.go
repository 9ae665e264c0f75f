package cart

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"laptopstore-backend/internal/domain"
)

// Repository persists per-user cart documents. Items are always replaced
// wholesale; the document update is the only atomicity guarantee.
type Repository interface {
	// GetByUser returns domain.ErrNotFound when the user has no cart yet.
	GetByUser(ctx context.Context, userID primitive.ObjectID) (domain.Cart, error)
	// ReplaceItems overwrites the items array and bumps updatedAt. With
	// upsert the cart document is created lazily on first write.
	ReplaceItems(ctx context.Context, userID primitive.ObjectID, items []domain.CartItem, upsert bool) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}
