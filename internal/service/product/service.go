package product

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"laptopstore-backend/internal/domain"
	productrepo "laptopstore-backend/internal/repository/product"
)

// Service handles the catalog. Writes are reachable only through admin
// routes; reads are public.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *Service) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	if err := validate(p); err != nil {
		return domain.Product{}, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id primitive.ObjectID, p domain.Product) (domain.Product, error) {
	if err := validate(p); err != nil {
		return domain.Product{}, err
	}
	return s.repo.Update(ctx, id, p)
}

func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

func validate(p domain.Product) error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Category) == "" ||
		strings.TrimSpace(p.Description) == "" || strings.TrimSpace(p.ImageURL) == "" {
		return domain.Invalid("All product fields are required.")
	}
	if p.Price < 0 || p.Stock < 0 {
		return domain.Invalid("Price and stock must be non-negative.")
	}
	return nil
}
