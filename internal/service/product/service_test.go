package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"laptopstore-backend/internal/domain"
)

type stubProductRepo struct {
	byID map[primitive.ObjectID]domain.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[primitive.ObjectID]domain.Product)}
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubProductRepo) GetByID(_ context.Context, id primitive.ObjectID) (domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

func (r *stubProductRepo) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	p.ID = primitive.NewObjectID()
	r.byID[p.ID] = p
	return p, nil
}

func (r *stubProductRepo) Update(_ context.Context, id primitive.ObjectID, p domain.Product) (domain.Product, error) {
	if _, ok := r.byID[id]; !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	p.ID = id
	r.byID[id] = p
	return p, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func validProduct() domain.Product {
	return domain.Product{
		Name:        "ZenBook 14",
		Category:    "ultrabook",
		Price:       999.0,
		Stock:       12,
		Description: "14-inch ultrabook",
		ImageURL:    "https://cdn.example.com/zenbook.jpg",
	}
}

func TestListEmptyCatalog(t *testing.T) {
	svc := New(newStubProductRepo())

	products, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestCreateAssignsID(t *testing.T) {
	svc := New(newStubProductRepo())

	created, err := svc.Create(context.Background(), validProduct())

	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc := New(newStubProductRepo())
	p := validProduct()
	p.Description = ""

	_, err := svc.Create(context.Background(), p)

	assert.True(t, domain.IsValidation(err))
}

func TestCreateRejectsNegativePriceOrStock(t *testing.T) {
	svc := New(newStubProductRepo())

	p := validProduct()
	p.Price = -1
	_, err := svc.Create(context.Background(), p)
	assert.True(t, domain.IsValidation(err))

	p = validProduct()
	p.Stock = -1
	_, err = svc.Create(context.Background(), p)
	assert.True(t, domain.IsValidation(err))
}

func TestUpdateUnknownProduct(t *testing.T) {
	svc := New(newStubProductRepo())

	_, err := svc.Update(context.Background(), primitive.NewObjectID(), validProduct())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteRemovesProduct(t *testing.T) {
	repo := newStubProductRepo()
	svc := New(repo)

	created, err := svc.Create(context.Background(), validProduct())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.byID)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), domain.ErrNotFound)
}
