package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus enumerates the lifecycle states an order moves through.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID string  `bson:"productId" json:"productId" validate:"required"`
	Quantity  int     `bson:"quantity" json:"quantity" validate:"gt=0"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice" validate:"gte=0"`
}

// Order represents a customer order. The customer is referenced by
// phone number, the customer's natural key.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderID     string             `bson:"orderId" json:"orderId"`
	CustomerID  string             `bson:"customerId" json:"customerId" validate:"required"`
	Items       []OrderItem        `bson:"items" json:"items" validate:"dive"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount" validate:"gte=0"`
	Status      OrderStatus        `bson:"status" json:"status" validate:"required,oneof=pending processing delivered cancelled"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OrderUpdate carries the fields a PUT may change.
type OrderUpdate struct {
	CustomerID  *string      `json:"customerId,omitempty"`
	Items       *[]OrderItem `json:"items,omitempty"`
	TotalAmount *float64     `json:"totalAmount,omitempty"`
	Status      *OrderStatus `json:"status,omitempty"`
}
