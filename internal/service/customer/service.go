package customer

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"laptopstore-backend/internal/domain"
	addressrepo "laptopstore-backend/internal/repository/address"
	cartrepo "laptopstore-backend/internal/repository/cart"
	orderrepo "laptopstore-backend/internal/repository/order"
	userrepo "laptopstore-backend/internal/repository/user"
	wishlistrepo "laptopstore-backend/internal/repository/wishlist"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Service handles registration, login, profile reads and the admin user
// management surface, including the cascade that removes a deleted user's
// orders, cart, wishlist and addresses.
type Service struct {
	users      userrepo.Repository
	orders     orderrepo.Repository
	carts      cartrepo.Repository
	wishlists  wishlistrepo.Repository
	addresses  addressrepo.Repository
	tokens     *TokenManager
}

func New(users userrepo.Repository, orders orderrepo.Repository, carts cartrepo.Repository,
	wishlists wishlistrepo.Repository, addresses addressrepo.Repository, tokens *TokenManager) *Service {
	return &Service{
		users:     users,
		orders:    orders,
		carts:     carts,
		wishlists: wishlists,
		addresses: addresses,
		tokens:    tokens,
	}
}

// Register creates a user with a bcrypt-hashed password; duplicate emails
// surface as a conflict from the unique index.
func (s *Service) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return domain.User{}, domain.Invalid("Name, email and password are required.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	created, err := s.users.Create(ctx, domain.User{Name: name, Email: email, Password: string(hashed)})
	if err != nil {
		return domain.User{}, err
	}
	created.Password = ""
	return created, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return domain.User{}, "", err
	}
	u.Password = ""
	return u, token, nil
}

// AdminLogin is Login plus a server-side admin-flag check.
func (s *Service) AdminLogin(ctx context.Context, email, password string) (domain.User, string, error) {
	u, token, err := s.Login(ctx, email, password)
	if err != nil {
		return domain.User{}, "", err
	}
	if !u.IsAdmin {
		return domain.User{}, "", domain.ErrForbidden
	}
	return u, token, nil
}

// Profile returns the user record without the password hash.
func (s *Service) Profile(ctx context.Context, userID primitive.ObjectID) (domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = ""
	return u, nil
}

// RequireAdmin is the capability guard for admin routes: it re-fetches the
// user record and confirms the flag rather than trusting the token claim.
func (s *Service) RequireAdmin(ctx context.Context, userID primitive.ObjectID) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrForbidden
		}
		return err
	}
	if !u.IsAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// ListUsers returns all non-admin users with passwords stripped.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListNonAdmins(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// DeleteUser removes a non-admin user and cascades to every aggregate that
// identity owns. Admins cannot delete themselves or other admins here.
func (s *Service) DeleteUser(ctx context.Context, adminID, targetID primitive.ObjectID) error {
	if adminID == targetID {
		return domain.Invalid("Admins cannot delete their own account from this panel.")
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.IsAdmin {
		return domain.ErrForbidden
	}

	if err := s.users.Delete(ctx, targetID); err != nil {
		return err
	}
	if err := s.orders.DeleteByUser(ctx, targetID); err != nil {
		return err
	}
	if err := s.carts.DeleteByUser(ctx, targetID); err != nil {
		return err
	}
	if err := s.wishlists.DeleteByUser(ctx, targetID); err != nil {
		return err
	}
	if err := s.addresses.DeleteByUser(ctx, targetID); err != nil {
		return err
	}

	logger.Info().Str("userId", targetID.Hex()).Msg("user and associated data deleted")
	return nil
}
