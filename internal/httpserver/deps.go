package httpserver

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"laptopstore-backend/internal/domain"
	"laptopstore-backend/internal/payment"
	orderrepo "laptopstore-backend/internal/repository/order"
	customersvc "laptopstore-backend/internal/service/customer"
	ordersvc "laptopstore-backend/internal/service/order"
)

// The handler layer depends on these narrow interfaces so tests can swap in
// stubs.

type CustomerService interface {
	Register(ctx context.Context, name, email, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
	AdminLogin(ctx context.Context, email, password string) (domain.User, string, error)
	Profile(ctx context.Context, userID primitive.ObjectID) (domain.User, error)
	RequireAdmin(ctx context.Context, userID primitive.ObjectID) error
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, adminID, targetID primitive.ObjectID) error
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, p domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CartService interface {
	Items(ctx context.Context, userID primitive.ObjectID) ([]domain.CartItem, error)
	Add(ctx context.Context, userID primitive.ObjectID, item domain.CartItem) ([]domain.CartItem, error)
	UpdateQuantity(ctx context.Context, userID primitive.ObjectID, productID string, quantity int) ([]domain.CartItem, error)
	Remove(ctx context.Context, userID primitive.ObjectID, productID string) ([]domain.CartItem, error)
}

type WishlistService interface {
	Items(ctx context.Context, userID primitive.ObjectID) ([]domain.WishlistItem, error)
	Add(ctx context.Context, userID primitive.ObjectID, item domain.WishlistItem) (domain.WishlistItem, error)
	Remove(ctx context.Context, userID primitive.ObjectID, productID string) error
}

type OrderService interface {
	Place(ctx context.Context, userID primitive.ObjectID, in ordersvc.PlaceInput) (domain.Order, error)
	ListForUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error)
	GetForUser(ctx context.Context, orderID string, userID primitive.ObjectID) (domain.Order, error)
	ListAll(ctx context.Context, f orderrepo.Filter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (domain.Order, error)
}

type AddressService interface {
	List(ctx context.Context, userID primitive.ObjectID) ([]domain.Address, error)
	Create(ctx context.Context, userID primitive.ObjectID, a domain.Address) (domain.Address, error)
	Update(ctx context.Context, id, userID primitive.ObjectID, a domain.Address) (domain.Address, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (payment.OrderResponse, error)
}

// TokenValidator verifies access tokens and returns the identity claims.
type TokenValidator interface {
	Validate(token string) (customersvc.Claims, error)
}

// Deps bundles everything the router needs.
type Deps struct {
	Customers CustomerService
	Products  ProductService
	Carts     CartService
	Wishlists WishlistService
	Orders    OrderService
	Addresses AddressService
	Payments  PaymentGateway
	Tokens    TokenValidator
}
