package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	FullName     string             `bson:"fullName" json:"fullName"`
	AddressLine1 string             `bson:"addressLine1" json:"addressLine1"`
	AddressLine2 string             `bson:"addressLine2" json:"addressLine2"`
	City         string             `bson:"city" json:"city"`
	State        string             `bson:"state" json:"state"`
	ZipCode      string             `bson:"zipCode" json:"zipCode"`
	PhoneNumber  string             `bson:"phoneNumber" json:"phoneNumber"`
	IsDefault    bool               `bson:"isDefault" json:"isDefault"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
