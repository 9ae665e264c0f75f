package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem fields other than quantity are snapshots taken at add-time and are
// not kept in sync with later catalog changes.
type CartItem struct {
	ProductID    string  `bson:"productId" json:"productId"`
	ProductName  string  `bson:"productName" json:"productName"`
	ProductPrice float64 `bson:"productPrice" json:"productPrice"`
	ProductImage string  `bson:"productImage" json:"productImage"`
	ProductSpecs string  `bson:"productSpecs,omitempty" json:"productSpecs,omitempty"`
	Quantity     int     `bson:"quantity" json:"quantity"`
}

// Cart is a per-user singleton; userId carries a unique index.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
