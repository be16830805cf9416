package store

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"store-management/models"
)

// validate checks documents against their struct tags before any write.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations against the wire names, not the Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func validateDoc(doc interface{}) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return &ValidationError{Message: strings.Join(msgs, "; ")}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// The prepare functions shape a document before its first write:
// defaults, generated identifiers, timestamps, then validation. Shared
// by the Mongo and memory implementations so both enforce one schema.

func prepareCustomer(c *models.Customer, now time.Time) error {
	c.CreatedAt = now
	c.UpdatedAt = now
	return validateDoc(c)
}

func prepareProduct(p *models.Product, now time.Time) error {
	if p.ProductID == "" {
		p.ProductID = uuid.New().String()
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	return validateDoc(p)
}

func prepareOrder(o *models.Order, now time.Time) error {
	if o.OrderID == "" {
		o.OrderID = uuid.New().String()
	}
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}
	o.CreatedAt = now
	o.UpdatedAt = now
	return validateDoc(o)
}

func prepareEmployee(e *models.Employee, now time.Time) error {
	for i := range e.Alerts {
		normalizeAlert(&e.Alerts[i], now)
	}
	if err := checkAlertIDs(e.Alerts); err != nil {
		return err
	}
	e.CreatedAt = now
	e.UpdatedAt = now
	return validateDoc(e)
}

// checkAlertIDs enforces alert-ID uniqueness within one employee.
func checkAlertIDs(alerts []models.Alert) error {
	seen := make(map[string]struct{}, len(alerts))
	for _, a := range alerts {
		if _, dup := seen[a.AlertID]; dup {
			return &ValidationError{Message: fmt.Sprintf("alerts contain duplicate alertId %q", a.AlertID)}
		}
		seen[a.AlertID] = struct{}{}
	}
	return nil
}

func prepareUser(u *models.User, now time.Time) error {
	if u.Role == "" {
		u.Role = "employee"
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	return validateDoc(u)
}

func normalizeAlert(a *models.Alert, now time.Time) {
	if a.AlertID == "" {
		a.AlertID = uuid.New().String()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = now
	}
	if a.Status == "" {
		a.Status = models.AlertStatusPending
	}
}

// The apply functions merge a partial update into an existing document
// and re-validate the result. Natural keys are never touched.

func applyCustomerUpdate(c *models.Customer, u models.CustomerUpdate, now time.Time) error {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Address != nil {
		c.Address = *u.Address
	}
	if u.LoyaltyPoints != nil {
		c.LoyaltyPoints = *u.LoyaltyPoints
	}
	c.UpdatedAt = now
	return validateDoc(c)
}

func applyProductUpdate(p *models.Product, u models.ProductUpdate, now time.Time) error {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
	p.UpdatedAt = now
	return validateDoc(p)
}

func applyOrderUpdate(o *models.Order, u models.OrderUpdate, now time.Time) error {
	if u.CustomerID != nil {
		o.CustomerID = *u.CustomerID
	}
	if u.Items != nil {
		o.Items = *u.Items
	}
	if u.TotalAmount != nil {
		o.TotalAmount = *u.TotalAmount
	}
	if u.Status != nil {
		o.Status = *u.Status
	}
	o.UpdatedAt = now
	return validateDoc(o)
}

func applyEmployeeUpdate(e *models.Employee, u models.EmployeeUpdate, now time.Time) error {
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Email != nil {
		e.Email = *u.Email
	}
	if u.Role != nil {
		e.Role = *u.Role
	}
	if u.Alerts != nil {
		e.Alerts = *u.Alerts
		for i := range e.Alerts {
			normalizeAlert(&e.Alerts[i], now)
		}
		if err := checkAlertIDs(e.Alerts); err != nil {
			return err
		}
	}
	e.UpdatedAt = now
	return validateDoc(e)
}

func applyAlertUpdate(a *models.Alert, u models.AlertUpdate) error {
	if u.Message != nil {
		a.Message = *u.Message
	}
	if u.Timestamp != nil {
		a.Timestamp = *u.Timestamp
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	return validateDoc(a)
}
