package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents an item carried by the store.
type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProductID string             `bson:"productId" json:"productId" validate:"required"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Price     float64            `bson:"price" json:"price" validate:"gte=0"`
	Stock     int                `bson:"stock" json:"stock" validate:"gte=0"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProductUpdate carries the fields a PUT may change.
type ProductUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Category *string  `json:"category,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Stock    *int     `json:"stock,omitempty"`
}
