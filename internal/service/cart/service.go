package cart

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"laptopstore-backend/internal/domain"
	cartrepo "laptopstore-backend/internal/repository/cart"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Service implements the cart aggregate: a lazily-created per-user line-item
// list, merged by productId and persisted wholesale on every mutation.
type Service struct {
	repo cartrepo.Repository
}

func New(repo cartrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Items returns the user's cart contents; a user without a cart gets an empty
// slice, not an error.
func (s *Service) Items(ctx context.Context, userID primitive.ObjectID) ([]domain.CartItem, error) {
	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.CartItem{}, nil
		}
		return nil, err
	}
	if cart.Items == nil {
		return []domain.CartItem{}, nil
	}
	return cart.Items, nil
}

// Add merges the item into the cart: an existing line with the same productId
// gets its quantity incremented, otherwise the line is appended. The cart
// document is created on first add.
func (s *Service) Add(ctx context.Context, userID primitive.ObjectID, item domain.CartItem) ([]domain.CartItem, error) {
	if strings.TrimSpace(item.ProductID) == "" || strings.TrimSpace(item.ProductName) == "" {
		return nil, domain.Invalid("Product ID and name are required.")
	}
	if item.Quantity < 0 {
		return nil, domain.Invalid("Quantity must be a positive number.")
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}

	items, err := s.Items(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, item)
	}

	if err := s.repo.ReplaceItems(ctx, userID, items, true); err != nil {
		logger.Error().Err(err).Str("userId", userID.Hex()).Msg("persist cart failed")
		return nil, err
	}
	return items, nil
}

// UpdateQuantity sets an existing line to the given quantity. Quantities
// below 1 are rejected before storage is touched.
func (s *Service) UpdateQuantity(ctx context.Context, userID primitive.ObjectID, productID string, quantity int) ([]domain.CartItem, error) {
	if quantity < 1 {
		return nil, domain.Invalid("Quantity must be a positive number.")
	}

	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrNotFound
	}

	if err := s.repo.ReplaceItems(ctx, userID, cart.Items, false); err != nil {
		return nil, err
	}
	return cart.Items, nil
}

// Remove filters the line out of the cart; an absent productId is NotFound,
// detected by comparing lengths before and after.
func (s *Service) Remove(ctx context.Context, userID primitive.ObjectID, productID string) ([]domain.CartItem, error) {
	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := make([]domain.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(cart.Items) {
		return nil, domain.ErrNotFound
	}

	if err := s.repo.ReplaceItems(ctx, userID, kept, false); err != nil {
		return nil, err
	}
	return kept, nil
}
