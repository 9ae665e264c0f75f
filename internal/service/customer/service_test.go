package customer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"laptopstore-backend/internal/domain"
	orderrepo "laptopstore-backend/internal/repository/order"
)

type stubUserRepo struct {
	byID    map[primitive.ObjectID]domain.User
	byEmail map[string]domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:    make(map[primitive.ObjectID]domain.User),
		byEmail: make(map[string]domain.User),
	}
}

func (r *stubUserRepo) put(u domain.User) domain.User {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return u
}

func (r *stubUserRepo) Create(_ context.Context, u domain.User) (domain.User, error) {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.User{}, domain.ErrAlreadyExists
	}
	return r.put(u), nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r *stubUserRepo) ListNonAdmins(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.byID {
		if !u.IsAdmin {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	return nil
}

// cascadeRecorder tracks per-user deletions across the owned aggregates.
type cascadeRecorder struct {
	deleted []primitive.ObjectID
}

func (r *cascadeRecorder) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	r.deleted = append(r.deleted, userID)
	return nil
}

type stubOrderRepo struct{ cascadeRecorder }

func (r *stubOrderRepo) Insert(_ context.Context, o domain.Order) (domain.Order, error) {
	return o, nil
}
func (r *stubOrderRepo) GetByOrderID(_ context.Context, _ string) (domain.Order, error) {
	return domain.Order{}, domain.ErrNotFound
}
func (r *stubOrderRepo) GetByOrderIDForUser(_ context.Context, _ string, _ primitive.ObjectID) (domain.Order, error) {
	return domain.Order{}, domain.ErrNotFound
}
func (r *stubOrderRepo) ListByUser(_ context.Context, _ primitive.ObjectID) ([]domain.Order, error) {
	return nil, nil
}
func (r *stubOrderRepo) List(_ context.Context, _ orderrepo.Filter) ([]domain.Order, error) {
	return nil, nil
}
func (r *stubOrderRepo) UpdateStatus(_ context.Context, _, _ string) (domain.Order, error) {
	return domain.Order{}, domain.ErrNotFound
}

type stubCartRepo struct{ cascadeRecorder }

func (r *stubCartRepo) GetByUser(_ context.Context, _ primitive.ObjectID) (domain.Cart, error) {
	return domain.Cart{}, domain.ErrNotFound
}
func (r *stubCartRepo) ReplaceItems(_ context.Context, _ primitive.ObjectID, _ []domain.CartItem, _ bool) error {
	return nil
}

type stubWishlistRepo struct{ cascadeRecorder }

func (r *stubWishlistRepo) GetByUser(_ context.Context, _ primitive.ObjectID) (domain.Wishlist, error) {
	return domain.Wishlist{}, domain.ErrNotFound
}
func (r *stubWishlistRepo) ReplaceItems(_ context.Context, _ primitive.ObjectID, _ []domain.WishlistItem, _ bool) error {
	return nil
}

type stubAddressRepo struct{ cascadeRecorder }

func (r *stubAddressRepo) ListByUser(_ context.Context, _ primitive.ObjectID) ([]domain.Address, error) {
	return nil, nil
}
func (r *stubAddressRepo) Create(_ context.Context, a domain.Address) (domain.Address, error) {
	return a, nil
}
func (r *stubAddressRepo) Update(_ context.Context, _, _ primitive.ObjectID, _ domain.Address) (domain.Address, error) {
	return domain.Address{}, domain.ErrNotFound
}
func (r *stubAddressRepo) Delete(_ context.Context, _, _ primitive.ObjectID) error {
	return domain.ErrNotFound
}

type fixture struct {
	svc       *Service
	users     *stubUserRepo
	orders    *stubOrderRepo
	carts     *stubCartRepo
	wishlists *stubWishlistRepo
	addresses *stubAddressRepo
}

func newFixture() fixture {
	f := fixture{
		users:     newStubUserRepo(),
		orders:    &stubOrderRepo{},
		carts:     &stubCartRepo{},
		wishlists: &stubWishlistRepo{},
		addresses: &stubAddressRepo{},
	}
	tokens := NewTokenManager("test-secret", time.Hour)
	f.svc = New(f.users, f.orders, f.carts, f.wishlists, f.addresses, tokens)
	return f
}

func TestRegisterHashesPassword(t *testing.T) {
	f := newFixture()

	created, err := f.svc.Register(context.Background(), "Asha Verma", "asha@example.com", "hunter22")

	require.NoError(t, err)
	assert.Empty(t, created.Password)

	stored := f.users.byEmail["asha@example.com"]
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter22")))
}

func TestRegisterRejectsBlankFields(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Register(context.Background(), "  ", "asha@example.com", "hunter22")
	assert.True(t, domain.IsValidation(err))

	_, err = f.svc.Register(context.Background(), "Asha Verma", "asha@example.com", "")
	assert.True(t, domain.IsValidation(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, "Asha Verma", "asha@example.com", "hunter22")
	require.NoError(t, err)

	_, err = f.svc.Register(ctx, "Another Asha", "asha@example.com", "hunter23")

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestLoginIssuesToken(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, "Asha Verma", "asha@example.com", "hunter22")
	require.NoError(t, err)

	u, token, err := f.svc.Login(ctx, "asha@example.com", "hunter22")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, u.Password)
	assert.Equal(t, "asha@example.com", u.Email)
}

func TestLoginBadCredentials(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, "Asha Verma", "asha@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = f.svc.Login(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = f.svc.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAdminLoginRejectsNonAdmin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, "Asha Verma", "asha@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = f.svc.AdminLogin(ctx, "asha@example.com", "hunter22")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAdminLoginAcceptsAdmin(t *testing.T) {
	f := newFixture()
	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	require.NoError(t, err)
	f.users.put(domain.User{Name: "Root", Email: "root@example.com", Password: string(hashed), IsAdmin: true})

	u, token, err := f.svc.AdminLogin(context.Background(), "root@example.com", "hunter22")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, u.IsAdmin)
}

func TestProfileStripsPassword(t *testing.T) {
	f := newFixture()
	u := f.users.put(domain.User{Name: "Asha Verma", Email: "asha@example.com", Password: "hash"})

	got, err := f.svc.Profile(context.Background(), u.ID)

	require.NoError(t, err)
	assert.Empty(t, got.Password)
	assert.Equal(t, u.Email, got.Email)
}

func TestRequireAdmin(t *testing.T) {
	f := newFixture()
	admin := f.users.put(domain.User{Email: "root@example.com", IsAdmin: true})
	regular := f.users.put(domain.User{Email: "asha@example.com"})

	assert.NoError(t, f.svc.RequireAdmin(context.Background(), admin.ID))
	assert.ErrorIs(t, f.svc.RequireAdmin(context.Background(), regular.ID), domain.ErrForbidden)
	assert.ErrorIs(t, f.svc.RequireAdmin(context.Background(), primitive.NewObjectID()), domain.ErrForbidden)
}

func TestListUsersSkipsAdminsAndPasswords(t *testing.T) {
	f := newFixture()
	f.users.put(domain.User{Email: "root@example.com", Password: "hash", IsAdmin: true})
	f.users.put(domain.User{Email: "asha@example.com", Password: "hash"})

	users, err := f.svc.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "asha@example.com", users[0].Email)
	assert.Empty(t, users[0].Password)
}

func TestDeleteUserCascades(t *testing.T) {
	f := newFixture()
	admin := f.users.put(domain.User{Email: "root@example.com", IsAdmin: true})
	target := f.users.put(domain.User{Email: "asha@example.com"})

	require.NoError(t, f.svc.DeleteUser(context.Background(), admin.ID, target.ID))

	_, exists := f.users.byID[target.ID]
	assert.False(t, exists)
	assert.Equal(t, []primitive.ObjectID{target.ID}, f.orders.deleted)
	assert.Equal(t, []primitive.ObjectID{target.ID}, f.carts.deleted)
	assert.Equal(t, []primitive.ObjectID{target.ID}, f.wishlists.deleted)
	assert.Equal(t, []primitive.ObjectID{target.ID}, f.addresses.deleted)
}

func TestDeleteUserRefusesSelf(t *testing.T) {
	f := newFixture()
	admin := f.users.put(domain.User{Email: "root@example.com", IsAdmin: true})

	err := f.svc.DeleteUser(context.Background(), admin.ID, admin.ID)

	assert.True(t, domain.IsValidation(err))
	_, exists := f.users.byID[admin.ID]
	assert.True(t, exists)
}

func TestDeleteUserRefusesOtherAdmins(t *testing.T) {
	f := newFixture()
	admin := f.users.put(domain.User{Email: "root@example.com", IsAdmin: true})
	other := f.users.put(domain.User{Email: "second@example.com", IsAdmin: true})

	err := f.svc.DeleteUser(context.Background(), admin.ID, other.ID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, f.orders.deleted)
}
