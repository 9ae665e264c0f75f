package order

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"laptopstore-backend/internal/domain"
	cartrepo "laptopstore-backend/internal/repository/cart"
	orderrepo "laptopstore-backend/internal/repository/order"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Service implements the order aggregate: checkout, user-scoped reads, and
// the admin-only status state machine.
type Service struct {
	orders orderrepo.Repository
	carts  cartrepo.Repository
	newID  func() string
}

func New(orders orderrepo.Repository, carts cartrepo.Repository) *Service {
	return &Service{orders: orders, carts: carts, newID: NewOrderID}
}

// PlaceInput is the checkout payload. Totals and line prices are stored
// exactly as submitted; the server does not recompute them against the
// catalog and does not decrement stock. Known trust boundary.
type PlaceInput struct {
	CustomerInfo      *domain.CustomerInfo    `json:"customerInfo"`
	ShippingAddress   *domain.ShippingAddress `json:"shippingAddress"`
	PaymentMethod     string                  `json:"paymentMethod"`
	Items             []domain.OrderItem      `json:"items"`
	Subtotal          float64                 `json:"subtotal"`
	Shipping          float64                 `json:"shipping"`
	GrandTotal        float64                 `json:"grandTotal"`
	RazorpayPaymentID string                  `json:"razorpayPaymentId"`
	RazorpayOrderID   string                  `json:"razorpayOrderId"`
}

// Place validates the payload, persists the order with a fresh orderId and
// status pending, then empties the user's cart. The two writes are not
// atomic: a crash in between leaves the order placed and the cart stale. On
// an orderId collision the insert fails with a conflict and the cart is left
// untouched so the caller can retry the whole checkout.
func (s *Service) Place(ctx context.Context, userID primitive.ObjectID, in PlaceInput) (domain.Order, error) {
	if in.CustomerInfo == nil || in.ShippingAddress == nil || in.PaymentMethod == "" || len(in.Items) == 0 || in.GrandTotal == 0 {
		return domain.Order{}, domain.Invalid("Missing required order details.")
	}
	if !domain.ValidPaymentMethod(in.PaymentMethod) {
		return domain.Order{}, domain.Invalid("Invalid payment method provided.")
	}
	if in.PaymentMethod == domain.PaymentRazorpay && (in.RazorpayPaymentID == "" || in.RazorpayOrderID == "") {
		return domain.Order{}, domain.Invalid("Razorpay payment details are required for razorpay orders.")
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return domain.Order{}, domain.Invalid("Each order item needs a productId and a quantity of at least 1.")
		}
	}

	o := domain.Order{
		UserID:            userID,
		OrderID:           s.newID(),
		OrderDate:         time.Now(),
		CustomerInfo:      *in.CustomerInfo,
		ShippingAddress:   *in.ShippingAddress,
		PaymentMethod:     in.PaymentMethod,
		Items:             in.Items,
		Subtotal:          in.Subtotal,
		Shipping:          in.Shipping,
		GrandTotal:        in.GrandTotal,
		RazorpayPaymentID: in.RazorpayPaymentID,
		RazorpayOrderID:   in.RazorpayOrderID,
		Status:            domain.StatusPending,
	}

	placed, err := s.orders.Insert(ctx, o)
	if err != nil {
		return domain.Order{}, err
	}

	// Cart clear is best-effort once the order exists; a missing cart is
	// fine and any other failure leaves stale items the user clears by hand.
	if err := s.carts.ReplaceItems(ctx, userID, nil, false); err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Error().Err(err).Str("orderId", placed.OrderID).Msg("clear cart after checkout failed")
	}

	return placed, nil
}

// ListForUser returns the caller's orders newest-first.
func (s *Service) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// GetForUser fetches one order by the (orderId, userId) pair.
func (s *Service) GetForUser(ctx context.Context, orderID string, userID primitive.ObjectID) (domain.Order, error) {
	return s.orders.GetByOrderIDForUser(ctx, orderID, userID)
}

// ListAll returns orders matching the admin filter, newest-first.
func (s *Service) ListAll(ctx context.Context, f orderrepo.Filter) ([]domain.Order, error) {
	orders, err := s.orders.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// UpdateStatus transitions an order. Only the five enumerated statuses are
// accepted, and delivered/cancelled are terminal.
func (s *Service) UpdateStatus(ctx context.Context, orderID, status string) (domain.Order, error) {
	if !domain.ValidStatus(status) {
		return domain.Order{}, domain.Invalid("Invalid order status provided.")
	}

	current, err := s.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if domain.TerminalStatus(current.Status) && current.Status != status {
		return domain.Order{}, domain.Invalid(fmt.Sprintf("Order is already %s and cannot change status.", current.Status))
	}

	return s.orders.UpdateStatus(ctx, orderID, status)
}
