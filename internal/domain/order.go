package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

const (
	PaymentCreditCard     = "credit-card"
	PaymentUPI            = "upi"
	PaymentNetBanking     = "net-banking"
	PaymentCashOnDelivery = "cash-on-delivery"
	PaymentRazorpay       = "razorpay"
)

// ValidStatus reports whether s is one of the five order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// TerminalStatus reports whether s admits no further transitions.
func TerminalStatus(s string) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ValidPaymentMethod reports whether s is an accepted payment method.
func ValidPaymentMethod(s string) bool {
	switch s {
	case PaymentCreditCard, PaymentUPI, PaymentNetBanking, PaymentCashOnDelivery, PaymentRazorpay:
		return true
	}
	return false
}

type CustomerInfo struct {
	FullName string `bson:"fullName" json:"fullName"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
}

// ShippingAddress is copied from the address book at checkout, not referenced.
type ShippingAddress struct {
	FullName     string `bson:"fullName" json:"fullName"`
	AddressLine1 string `bson:"addressLine1" json:"addressLine1"`
	AddressLine2 string `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	City         string `bson:"city" json:"city"`
	State        string `bson:"state" json:"state"`
	ZipCode      string `bson:"zipCode" json:"zipCode"`
	PhoneNumber  string `bson:"phoneNumber" json:"phoneNumber"`
}

type OrderItem struct {
	ProductID    string  `bson:"productId" json:"productId"`
	ProductName  string  `bson:"productName" json:"productName"`
	ProductPrice float64 `bson:"productPrice" json:"productPrice"`
	ProductImage string  `bson:"productImage,omitempty" json:"productImage,omitempty"`
	Quantity     int     `bson:"quantity" json:"quantity"`
}

// Order is immutable once created except for its status; orderId carries a
// unique index.
type Order struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            primitive.ObjectID `bson:"userId" json:"userId"`
	OrderID           string             `bson:"orderId" json:"orderId"`
	OrderDate         time.Time          `bson:"orderDate" json:"orderDate"`
	CustomerInfo      CustomerInfo       `bson:"customerInfo" json:"customerInfo"`
	ShippingAddress   ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod     string             `bson:"paymentMethod" json:"paymentMethod"`
	Items             []OrderItem        `bson:"items" json:"items"`
	Subtotal          float64            `bson:"subtotal" json:"subtotal"`
	Shipping          float64            `bson:"shipping" json:"shipping"`
	GrandTotal        float64            `bson:"grandTotal" json:"grandTotal"`
	RazorpayPaymentID string             `bson:"razorpayPaymentId,omitempty" json:"razorpayPaymentId,omitempty"`
	RazorpayOrderID   string             `bson:"razorpayOrderId,omitempty" json:"razorpayOrderId,omitempty"`
	Status            string             `bson:"status" json:"status"`
}
