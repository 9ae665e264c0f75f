package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WishlistItem struct {
	ProductID       string    `bson:"productId" json:"productId"`
	ProductName     string    `bson:"productName" json:"productName"`
	ProductImage    string    `bson:"productImage,omitempty" json:"productImage,omitempty"`
	ProductPrice    float64   `bson:"productPrice" json:"productPrice"`
	ProductCategory string    `bson:"productCategory,omitempty" json:"productCategory,omitempty"`
	AddedAt         time.Time `bson:"addedAt" json:"addedAt"`
}

// Wishlist is a per-user singleton; membership is boolean, no quantities.
type Wishlist struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Items  []WishlistItem     `bson:"items" json:"items"`
}
