package user

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"laptopstore-backend/internal/domain"
)

// Repository persists user records.
type Repository interface {
	// Create inserts a user; domain.ErrAlreadyExists on a duplicate email.
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (domain.User, error)
	// ListNonAdmins returns all non-admin users, passwords included;
	// callers strip them before responding.
	ListNonAdmins(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
