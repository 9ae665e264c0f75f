package address

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"laptopstore-backend/internal/domain"
)

type stubAddressRepo struct {
	byID map[primitive.ObjectID]domain.Address
}

func newStubAddressRepo() *stubAddressRepo {
	return &stubAddressRepo{byID: make(map[primitive.ObjectID]domain.Address)}
}

func (r *stubAddressRepo) ListByUser(_ context.Context, userID primitive.ObjectID) ([]domain.Address, error) {
	var out []domain.Address
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAddressRepo) Create(_ context.Context, a domain.Address) (domain.Address, error) {
	a.ID = primitive.NewObjectID()
	r.byID[a.ID] = a
	return a, nil
}

func (r *stubAddressRepo) Update(_ context.Context, id, userID primitive.ObjectID, a domain.Address) (domain.Address, error) {
	existing, ok := r.byID[id]
	if !ok || existing.UserID != userID {
		return domain.Address{}, domain.ErrNotFound
	}
	a.ID = id
	a.UserID = userID
	r.byID[id] = a
	return a, nil
}

func (r *stubAddressRepo) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	existing, ok := r.byID[id]
	if !ok || existing.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubAddressRepo) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	for id, a := range r.byID {
		if a.UserID == userID {
			delete(r.byID, id)
		}
	}
	return nil
}

func validAddress() domain.Address {
	return domain.Address{
		FullName:     "Asha Verma",
		AddressLine1: "12 MG Road",
		City:         "Pune",
		State:        "MH",
		ZipCode:      "411001",
		PhoneNumber:  "9876543210",
	}
}

func TestListEmptyForNewUser(t *testing.T) {
	svc := New(newStubAddressRepo())

	list, err := svc.List(context.Background(), primitive.NewObjectID())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCreateStampsOwnerAndTimestamp(t *testing.T) {
	svc := New(newStubAddressRepo())
	userID := primitive.NewObjectID()

	created, err := svc.Create(context.Background(), userID, validAddress())

	require.NoError(t, err)
	assert.Equal(t, userID, created.UserID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.ID.IsZero())
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc := New(newStubAddressRepo())
	a := validAddress()
	a.ZipCode = " "

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), a)

	assert.True(t, domain.IsValidation(err))
}

func TestUpdateOtherUsersAddressIsNotFound(t *testing.T) {
	svc := New(newStubAddressRepo())
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	created, err := svc.Create(context.Background(), owner, validAddress())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, stranger, validAddress())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteScopedToOwner(t *testing.T) {
	repo := newStubAddressRepo()
	svc := New(repo)
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	created, err := svc.Create(context.Background(), owner, validAddress())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID, stranger)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, repo.byID, 1)

	require.NoError(t, svc.Delete(context.Background(), created.ID, owner))
	assert.Empty(t, repo.byID)
}
