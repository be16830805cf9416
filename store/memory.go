package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"store-management/models"
)

// Memory is an in-process Store. Documents are held in insertion order,
// matching the unindexed listing order of the Mongo store. It backs the
// test suite and runs the service when no Mongo URI is configured.
type Memory struct {
	mu        sync.RWMutex
	customers []models.Customer
	products  []models.Product
	orders    []models.Order
	employees []models.Employee
	users     []models.User
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Customers() CustomerStore { return (*memoryCustomers)(m) }
func (m *Memory) Products() ProductStore   { return (*memoryProducts)(m) }
func (m *Memory) Orders() OrderStore       { return (*memoryOrders)(m) }
func (m *Memory) Employees() EmployeeStore { return (*memoryEmployees)(m) }
func (m *Memory) Users() UserStore         { return (*memoryUsers)(m) }

// ---- customers ----

type memoryCustomers Memory

func (m *memoryCustomers) List(ctx context.Context) ([]models.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Customer, len(m.customers))
	copy(out, m.customers)
	return out, nil
}

func (m *memoryCustomers) Get(ctx context.Context, phone string) (*models.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.customers {
		if m.customers[i].Phone == phone {
			c := m.customers[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryCustomers) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	c := *customer
	if err := prepareCustomer(&c, time.Now().UTC()); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.customers {
		if m.customers[i].Phone == c.Phone {
			return nil, ErrConflict
		}
	}
	m.customers = append(m.customers, c)
	return &c, nil
}

func (m *memoryCustomers) Update(ctx context.Context, phone string, update models.CustomerUpdate) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.customers {
		if m.customers[i].Phone != phone {
			continue
		}
		c := m.customers[i]
		if err := applyCustomerUpdate(&c, update, time.Now().UTC()); err != nil {
			return nil, err
		}
		m.customers[i] = c
		return &c, nil
	}
	return nil, ErrNotFound
}

func (m *memoryCustomers) Delete(ctx context.Context, phone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.customers {
		if m.customers[i].Phone == phone {
			m.customers = append(m.customers[:i], m.customers[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- products ----

type memoryProducts Memory

func (m *memoryProducts) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *memoryProducts) Get(ctx context.Context, productID string) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.products {
		if m.products[i].ProductID == productID {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryProducts) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	p := *product
	if err := prepareProduct(&p, time.Now().UTC()); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ProductID == p.ProductID {
			return nil, ErrConflict
		}
	}
	m.products = append(m.products, p)
	return &p, nil
}

func (m *memoryProducts) Update(ctx context.Context, productID string, update models.ProductUpdate) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ProductID != productID {
			continue
		}
		p := m.products[i]
		if err := applyProductUpdate(&p, update, time.Now().UTC()); err != nil {
			return nil, err
		}
		m.products[i] = p
		return &p, nil
	}
	return nil, ErrNotFound
}

func (m *memoryProducts) Delete(ctx context.Context, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ProductID == productID {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- orders ----

type memoryOrders Memory

func (m *memoryOrders) List(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		if filter.CustomerID != "" && o.CustomerID != filter.CustomerID {
			continue
		}
		if filter.Status != "" && string(o.Status) != filter.Status {
			continue
		}
		if filter.StartDate != nil && o.CreatedAt.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && o.CreatedAt.After(*filter.EndDate) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (m *memoryOrders) Get(ctx context.Context, orderID string) (*models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.orders {
		if m.orders[i].OrderID == orderID {
			o := m.orders[i]
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryOrders) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	o := *order
	if err := prepareOrder(&o, time.Now().UTC()); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].OrderID == o.OrderID {
			return nil, ErrConflict
		}
	}
	m.orders = append(m.orders, o)
	return &o, nil
}

func (m *memoryOrders) Update(ctx context.Context, orderID string, update models.OrderUpdate) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].OrderID != orderID {
			continue
		}
		o := m.orders[i]
		if err := applyOrderUpdate(&o, update, time.Now().UTC()); err != nil {
			return nil, err
		}
		m.orders[i] = o
		return &o, nil
	}
	return nil, ErrNotFound
}

func (m *memoryOrders) Delete(ctx context.Context, orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].OrderID == orderID {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- employees and embedded alerts ----

type memoryEmployees Memory

func (m *memoryEmployees) List(ctx context.Context) ([]models.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Employee, len(m.employees))
	for i, e := range m.employees {
		out[i] = cloneEmployee(e)
	}
	return out, nil
}

func (m *memoryEmployees) Get(ctx context.Context, employeeID string) (*models.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.employees {
		if m.employees[i].EmployeeID == employeeID {
			e := cloneEmployee(m.employees[i])
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryEmployees) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	e := cloneEmployee(*employee)
	if err := prepareEmployee(&e, time.Now().UTC()); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.employees {
		if m.employees[i].EmployeeID == e.EmployeeID {
			return nil, ErrConflict
		}
	}
	m.employees = append(m.employees, e)
	out := cloneEmployee(e)
	return &out, nil
}

func (m *memoryEmployees) Update(ctx context.Context, employeeID string, update models.EmployeeUpdate) (*models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.employees {
		if m.employees[i].EmployeeID != employeeID {
			continue
		}
		e := cloneEmployee(m.employees[i])
		if err := applyEmployeeUpdate(&e, update, time.Now().UTC()); err != nil {
			return nil, err
		}
		m.employees[i] = e
		out := cloneEmployee(e)
		return &out, nil
	}
	return nil, ErrNotFound
}

func (m *memoryEmployees) Delete(ctx context.Context, employeeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.employees {
		if m.employees[i].EmployeeID == employeeID {
			m.employees = append(m.employees[:i], m.employees[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *memoryEmployees) ListAlerts(ctx context.Context, filter AlertFilter) ([]models.EmployeeAlert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.EmployeeAlert, 0)
	for _, e := range m.employees {
		if filter.EmployeeID != "" && e.EmployeeID != filter.EmployeeID {
			continue
		}
		for _, a := range e.Alerts {
			out = append(out, models.EmployeeAlert{EmployeeID: e.EmployeeID, Alert: a})
		}
	}
	return out, nil
}

func (m *memoryEmployees) GetAlert(ctx context.Context, alertID string) (*models.EmployeeAlert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.employees {
		for _, a := range e.Alerts {
			if a.AlertID == alertID {
				return &models.EmployeeAlert{EmployeeID: e.EmployeeID, Alert: a}, nil
			}
		}
	}
	return nil, ErrNotFound
}

func (m *memoryEmployees) AppendAlert(ctx context.Context, employeeID string, alert models.Alert) (*models.EmployeeAlert, error) {
	normalizeAlert(&alert, time.Now().UTC())
	if err := validateDoc(&alert); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.employees {
		if m.employees[i].EmployeeID != employeeID {
			continue
		}
		for _, existing := range m.employees[i].Alerts {
			if existing.AlertID == alert.AlertID {
				return nil, ErrConflict
			}
		}
		m.employees[i].Alerts = append(m.employees[i].Alerts, alert)
		m.employees[i].UpdatedAt = time.Now().UTC()
		return &models.EmployeeAlert{EmployeeID: employeeID, Alert: alert}, nil
	}
	return nil, ErrNotFound
}

func (m *memoryEmployees) UpdateAlert(ctx context.Context, alertID string, update models.AlertUpdate) (*models.EmployeeAlert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.employees {
		for j := range m.employees[i].Alerts {
			if m.employees[i].Alerts[j].AlertID != alertID {
				continue
			}
			a := m.employees[i].Alerts[j]
			if err := applyAlertUpdate(&a, update); err != nil {
				return nil, err
			}
			m.employees[i].Alerts[j] = a
			m.employees[i].UpdatedAt = time.Now().UTC()
			return &models.EmployeeAlert{EmployeeID: m.employees[i].EmployeeID, Alert: a}, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryEmployees) RemoveAlert(ctx context.Context, alertID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.employees {
		for j := range m.employees[i].Alerts {
			if m.employees[i].Alerts[j].AlertID == alertID {
				m.employees[i].Alerts = append(m.employees[i].Alerts[:j], m.employees[i].Alerts[j+1:]...)
				m.employees[i].UpdatedAt = time.Now().UTC()
				return nil
			}
		}
	}
	return ErrNotFound
}

func cloneEmployee(e models.Employee) models.Employee {
	if e.Alerts != nil {
		alerts := make([]models.Alert, len(e.Alerts))
		copy(alerts, e.Alerts)
		e.Alerts = alerts
	}
	return e
}

// ---- users ----

type memoryUsers Memory

func (m *memoryUsers) ListUsers(ctx context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *memoryUsers) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryUsers) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	u := *user
	if err := prepareUser(&u, time.Now().UTC()); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].Email == u.Email {
			return nil, ErrConflict
		}
	}
	m.users = append(m.users, u)
	return &u, nil
}
