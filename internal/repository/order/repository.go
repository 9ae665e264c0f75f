package order

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"laptopstore-backend/internal/domain"
)

// Filter narrows the admin order listing. Zero values mean "no constraint";
// ranges are inclusive on both ends.
type Filter struct {
	Search        string
	Status        string
	PaymentMethod string
	DateFrom      *time.Time
	DateTo        *time.Time
	AmountMin     *float64
	AmountMax     *float64
}

// Repository persists order records.
type Repository interface {
	// Insert stores a new order; domain.ErrAlreadyExists when the orderId
	// collides with an existing one.
	Insert(ctx context.Context, o domain.Order) (domain.Order, error)
	GetByOrderID(ctx context.Context, orderID string) (domain.Order, error)
	// GetByOrderIDForUser matches on the (orderId, userId) pair so users can
	// only read orders they own.
	GetByOrderIDForUser(ctx context.Context, orderID string, userID primitive.ObjectID) (domain.Order, error)
	// ListByUser returns the user's orders newest-first.
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error)
	// List returns all orders matching the filter, newest-first.
	List(ctx context.Context, f Filter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (domain.Order, error)
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}
