package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer represents a store customer. Customers are looked up and
// mutated by phone number rather than a generated ID.
type Customer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Phone         string             `bson:"phone" json:"phone" validate:"required"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	LoyaltyPoints int                `bson:"loyaltyPoints" json:"loyaltyPoints" validate:"gte=0"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CustomerUpdate carries the fields a PUT may change. The phone number
// is the natural key and is never updatable.
type CustomerUpdate struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
	LoyaltyPoints *int    `json:"loyaltyPoints,omitempty"`
}
