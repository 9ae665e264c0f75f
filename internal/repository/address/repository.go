package address

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"laptopstore-backend/internal/domain"
)

// Repository persists shipping addresses. Update and Delete filter on the
// (id, userId) pair jointly; a non-matching pair is domain.ErrNotFound, not
// forbidden, so nothing leaks about other users' records.
type Repository interface {
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Address, error)
	Create(ctx context.Context, a domain.Address) (domain.Address, error)
	Update(ctx context.Context, id, userID primitive.ObjectID, a domain.Address) (domain.Address, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}
