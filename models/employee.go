package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AlertStatus is the delivery state of an alert.
type AlertStatus string

const (
	AlertStatusPending   AlertStatus = "pending"
	AlertStatusDelivered AlertStatus = "delivered"
)

// Alert is a notification owned by exactly one employee. Alerts live
// inside their parent employee document and have no independent
// lifecycle: deleting the employee removes them.
type Alert struct {
	AlertID   string      `bson:"alertId" json:"alertId"`
	Message   string      `bson:"message" json:"message"`
	Timestamp time.Time   `bson:"timestamp" json:"timestamp"`
	Status    AlertStatus `bson:"status" json:"status" validate:"required,oneof=pending delivered"`
}

// Employee represents a member of staff together with the ordered
// sequence of alerts addressed to them.
type Employee struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EmployeeID string             `bson:"employeeId" json:"employeeId" validate:"required"`
	Name       string             `bson:"name" json:"name" validate:"required"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Role       string             `bson:"role,omitempty" json:"role,omitempty"`
	Alerts     []Alert            `bson:"alerts" json:"alerts" validate:"dive"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EmployeeUpdate carries the fields a PUT may change. A non-nil Alerts
// replaces the employee's alert sequence wholesale; appending is done
// by sending the extended sequence.
type EmployeeUpdate struct {
	Name   *string  `json:"name,omitempty"`
	Email  *string  `json:"email,omitempty"`
	Role   *string  `json:"role,omitempty"`
	Alerts *[]Alert `json:"alerts,omitempty"`
}

// AlertUpdate carries the fields a PUT on an alert may change,
// typically flipping Status from pending to delivered.
type AlertUpdate struct {
	Message   *string      `json:"message,omitempty"`
	Timestamp *time.Time   `json:"timestamp,omitempty"`
	Status    *AlertStatus `json:"status,omitempty"`
}

// EmployeeAlert is an alert paired with the employee that owns it, the
// shape returned by the top-level alerts endpoints.
type EmployeeAlert struct {
	EmployeeID string `bson:"employeeId" json:"employeeId"`
	Alert      `bson:",inline"`
}
