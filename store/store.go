// Package store persists the store-management entities. Two
// implementations share one contract: a MongoDB-backed store for
// deployment and an in-memory store for development and tests.
package store

import (
	"context"
	"time"

	"store-management/models"
)

// ProductFilter narrows a product listing. Zero values mean "no filter".
type ProductFilter struct {
	Name     string
	Category string
}

// OrderFilter narrows an order listing. Date bounds are inclusive and
// apply to the order's creation time.
type OrderFilter struct {
	CustomerID string
	Status     string
	StartDate  *time.Time
	EndDate    *time.Time
}

// AlertFilter narrows an alert listing to one employee's alerts.
type AlertFilter struct {
	EmployeeID string
}

// CustomerStore persists customers keyed by phone number.
type CustomerStore interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, phone string) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	Update(ctx context.Context, phone string, update models.CustomerUpdate) (*models.Customer, error)
	Delete(ctx context.Context, phone string) error
}

// ProductStore persists products keyed by product ID.
type ProductStore interface {
	List(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	Get(ctx context.Context, productID string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, productID string, update models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, productID string) error
}

// OrderStore persists orders keyed by order ID.
type OrderStore interface {
	List(ctx context.Context, filter OrderFilter) ([]models.Order, error)
	Get(ctx context.Context, orderID string) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	Update(ctx context.Context, orderID string, update models.OrderUpdate) (*models.Order, error)
	Delete(ctx context.Context, orderID string) error
}

// EmployeeStore persists employees keyed by employee ID. Alerts are
// embedded in their parent employee document, so all alert operations
// live here: an alert ID addresses the embedded element across parents.
type EmployeeStore interface {
	List(ctx context.Context) ([]models.Employee, error)
	Get(ctx context.Context, employeeID string) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	Update(ctx context.Context, employeeID string, update models.EmployeeUpdate) (*models.Employee, error)
	Delete(ctx context.Context, employeeID string) error

	ListAlerts(ctx context.Context, filter AlertFilter) ([]models.EmployeeAlert, error)
	GetAlert(ctx context.Context, alertID string) (*models.EmployeeAlert, error)
	AppendAlert(ctx context.Context, employeeID string, alert models.Alert) (*models.EmployeeAlert, error)
	UpdateAlert(ctx context.Context, alertID string, update models.AlertUpdate) (*models.EmployeeAlert, error)
	RemoveAlert(ctx context.Context, alertID string) error
}

// UserStore persists portal accounts keyed by email.
type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
}

// Store bundles the per-entity stores behind one handle.
type Store interface {
	Customers() CustomerStore
	Products() ProductStore
	Orders() OrderStore
	Employees() EmployeeStore
	Users() UserStore
}
