package address

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"laptopstore-backend/internal/domain"
	addressrepo "laptopstore-backend/internal/repository/address"
)

// Service handles the per-user address book. Every mutating call is scoped
// by the owning user; acting on someone else's address looks like NotFound.
type Service struct {
	repo addressrepo.Repository
}

func New(repo addressrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID primitive.ObjectID) ([]domain.Address, error) {
	addresses, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if addresses == nil {
		addresses = []domain.Address{}
	}
	return addresses, nil
}

func (s *Service) Create(ctx context.Context, userID primitive.ObjectID, a domain.Address) (domain.Address, error) {
	if err := validate(a); err != nil {
		return domain.Address{}, err
	}
	a.ID = primitive.NilObjectID
	a.UserID = userID
	a.CreatedAt = time.Now()
	return s.repo.Create(ctx, a)
}

func (s *Service) Update(ctx context.Context, id, userID primitive.ObjectID, a domain.Address) (domain.Address, error) {
	if err := validate(a); err != nil {
		return domain.Address{}, err
	}
	return s.repo.Update(ctx, id, userID, a)
}

func (s *Service) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	return s.repo.Delete(ctx, id, userID)
}

func validate(a domain.Address) error {
	required := []string{a.FullName, a.AddressLine1, a.City, a.State, a.ZipCode, a.PhoneNumber}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return domain.Invalid("Full name, address line 1, city, state, zip code and phone number are required.")
		}
	}
	return nil
}
