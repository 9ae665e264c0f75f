package wishlist

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"laptopstore-backend/internal/domain"
	wishlistrepo "laptopstore-backend/internal/repository/wishlist"
)

// Service implements the wishlist aggregate: boolean product membership, no
// quantities, duplicates rejected rather than merged.
type Service struct {
	repo wishlistrepo.Repository
}

func New(repo wishlistrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Items returns the user's wishlist; a user without one gets an empty slice.
func (s *Service) Items(ctx context.Context, userID primitive.ObjectID) ([]domain.WishlistItem, error) {
	w, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.WishlistItem{}, nil
		}
		return nil, err
	}
	if w.Items == nil {
		return []domain.WishlistItem{}, nil
	}
	return w.Items, nil
}

// Add appends the product to the wishlist. A productId already present is a
// conflict surfaced to the caller, not a silent no-op.
func (s *Service) Add(ctx context.Context, userID primitive.ObjectID, item domain.WishlistItem) (domain.WishlistItem, error) {
	if strings.TrimSpace(item.ProductID) == "" || strings.TrimSpace(item.ProductName) == "" || item.ProductPrice == 0 {
		return domain.WishlistItem{}, domain.Invalid("Product ID, name, and price are required.")
	}

	items, err := s.Items(ctx, userID)
	if err != nil {
		return domain.WishlistItem{}, err
	}

	for _, existing := range items {
		if existing.ProductID == item.ProductID {
			return domain.WishlistItem{}, domain.ErrAlreadyExists
		}
	}

	item.AddedAt = time.Now()
	items = append(items, item)
	if err := s.repo.ReplaceItems(ctx, userID, items, true); err != nil {
		return domain.WishlistItem{}, err
	}
	return item, nil
}

// Remove deletes the product from the wishlist; an absent productId is
// NotFound, detected by comparing lengths before and after.
func (s *Service) Remove(ctx context.Context, userID primitive.ObjectID, productID string) error {
	w, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return err
	}

	kept := make([]domain.WishlistItem, 0, len(w.Items))
	for _, item := range w.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(w.Items) {
		return domain.ErrNotFound
	}

	return s.repo.ReplaceItems(ctx, userID, kept, false)
}
