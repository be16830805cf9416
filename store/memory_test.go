package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-management/models"
	"store-management/store"
)

func TestCustomerRoundTrip(t *testing.T) {
	s := store.NewMemory().Customers()
	ctx := context.Background()

	created, err := s.Create(ctx, &models.Customer{Phone: "555-0100", Name: "Priya"})
	require.NoError(t, err)
	assert.Equal(t, "555-0100", created.Phone)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.Get(ctx, "555-0100")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCustomerDuplicatePhone(t *testing.T) {
	s := store.NewMemory().Customers()
	ctx := context.Background()

	first, err := s.Create(ctx, &models.Customer{Phone: "555-0100", Name: "Priya"})
	require.NoError(t, err)

	_, err = s.Create(ctx, &models.Customer{Phone: "555-0100", Name: "Someone Else"})
	assert.ErrorIs(t, err, store.ErrConflict)

	// The first record is untouched.
	got, err := s.Get(ctx, "555-0100")
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestCustomerValidation(t *testing.T) {
	s := store.NewMemory().Customers()
	ctx := context.Background()

	_, err := s.Create(ctx, &models.Customer{Phone: "555-0100"})
	require.Error(t, err)
	assert.True(t, store.IsValidation(err))
	assert.Contains(t, err.Error(), "name is required")

	// Nothing was persisted.
	_, err = s.Get(ctx, "555-0100")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteUnknownKey(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	_, err := m.Customers().Create(ctx, &models.Customer{Phone: "555-0100", Name: "Priya"})
	require.NoError(t, err)

	err = m.Customers().Delete(ctx, "555-9999")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// The collection is unaffected.
	customers, err := m.Customers().List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestProductFilters(t *testing.T) {
	s := store.NewMemory().Products()
	ctx := context.Background()

	seed := []models.Product{
		{ProductID: "P1", Name: "Basmati Rice", Category: "grains"},
		{ProductID: "P2", Name: "Brown Rice", Category: "grains"},
		{ProductID: "P3", Name: "Olive Oil", Category: "oils"},
	}
	for i := range seed {
		_, err := s.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter store.ProductFilter
		want   []string
	}{
		{"no filter", store.ProductFilter{}, []string{"P1", "P2", "P3"}},
		{"by category", store.ProductFilter{Category: "grains"}, []string{"P1", "P2"}},
		{"by name substring", store.ProductFilter{Name: "rice"}, []string{"P1", "P2"}},
		{"name and category", store.ProductFilter{Name: "brown", Category: "grains"}, []string{"P2"}},
		{"no matches", store.ProductFilter{Category: "dairy"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := s.List(ctx, tt.filter)
			require.NoError(t, err)
			got := make([]string, 0, len(products))
			for _, p := range products {
				got = append(got, p.ProductID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderStatusFilterPreservesInsertionOrder(t *testing.T) {
	s := store.NewMemory().Orders()
	ctx := context.Background()

	statuses := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusDelivered,
		models.OrderStatusPending,
		models.OrderStatusCancelled,
		models.OrderStatusPending,
	}
	for i, status := range statuses {
		_, err := s.Create(ctx, &models.Order{
			OrderID:    string(rune('A' + i)),
			CustomerID: "555-0100",
			Status:     status,
		})
		require.NoError(t, err)
	}

	pending, err := s.List(ctx, store.OrderFilter{Status: "pending"})
	require.NoError(t, err)
	ids := make([]string, 0, len(pending))
	for _, o := range pending {
		assert.Equal(t, models.OrderStatusPending, o.Status)
		ids = append(ids, o.OrderID)
	}
	assert.Equal(t, []string{"A", "C", "E"}, ids)
}

func TestOrderDefaultsAndGeneratedID(t *testing.T) {
	s := store.NewMemory().Orders()
	ctx := context.Background()

	created, err := s.Create(ctx, &models.Order{CustomerID: "555-0100"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.OrderID)
	assert.Equal(t, models.OrderStatusPending, created.Status)
}

func TestOrderDateRangeFilter(t *testing.T) {
	s := store.NewMemory().Orders()
	ctx := context.Background()

	created, err := s.Create(ctx, &models.Order{OrderID: "O1", CustomerID: "555-0100"})
	require.NoError(t, err)

	before := created.CreatedAt.Add(-time.Hour)
	after := created.CreatedAt.Add(time.Hour)

	inRange, err := s.List(ctx, store.OrderFilter{StartDate: &before, EndDate: &after})
	require.NoError(t, err)
	assert.Len(t, inRange, 1)

	outOfRange, err := s.List(ctx, store.OrderFilter{StartDate: &after})
	require.NoError(t, err)
	assert.Empty(t, outOfRange)
}

func TestOrderRejectsUnknownStatus(t *testing.T) {
	s := store.NewMemory().Orders()
	ctx := context.Background()

	_, err := s.Create(ctx, &models.Order{OrderID: "O1", CustomerID: "555-0100", Status: "misplaced"})
	require.Error(t, err)
	assert.True(t, store.IsValidation(err))
}

func TestEmployeeAlertDefaultsToPending(t *testing.T) {
	s := store.NewMemory().Employees()
	ctx := context.Background()

	_, err := s.Create(ctx, &models.Employee{EmployeeID: "E1", Name: "Asha"})
	require.NoError(t, err)

	updated, err := s.Update(ctx, "E1", models.EmployeeUpdate{
		Alerts: &[]models.Alert{{AlertID: "A1", Message: "Restock aisle 3", Timestamp: time.Now()}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Alerts, 1)
	assert.Equal(t, models.AlertStatusPending, updated.Alerts[0].Status)
}

func TestAppendAlert(t *testing.T) {
	s := store.NewMemory().Employees()
	ctx := context.Background()

	_, err := s.Create(ctx, &models.Employee{EmployeeID: "E1", Name: "Asha"})
	require.NoError(t, err)

	created, err := s.AppendAlert(ctx, "E1", models.Alert{AlertID: "A1", Message: "Restock aisle 3"})
	require.NoError(t, err)
	assert.Equal(t, "E1", created.EmployeeID)
	assert.Equal(t, models.AlertStatusPending, created.Status)
	assert.False(t, created.Timestamp.IsZero())

	// Same alert ID within the same parent conflicts.
	_, err = s.AppendAlert(ctx, "E1", models.Alert{AlertID: "A1", Message: "again"})
	assert.ErrorIs(t, err, store.ErrConflict)

	// Unknown parent.
	_, err = s.AppendAlert(ctx, "E9", models.Alert{AlertID: "A2"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAlertStatusFlip(t *testing.T) {
	s := store.NewMemory().Employees()
	ctx := context.Background()

	_, err := s.Create(ctx, &models.Employee{EmployeeID: "E1", Name: "Asha"})
	require.NoError(t, err)
	_, err = s.AppendAlert(ctx, "E1", models.Alert{AlertID: "A1", Message: "Restock aisle 3"})
	require.NoError(t, err)

	delivered := models.AlertStatusDelivered
	updated, err := s.UpdateAlert(ctx, "A1", models.AlertUpdate{Status: &delivered})
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusDelivered, updated.Status)

	got, err := s.GetAlert(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusDelivered, got.Status)
}

func TestEmployeeDeleteCascadesToAlerts(t *testing.T) {
	s := store.NewMemory().Employees()
	ctx := context.Background()

	_, err := s.Create(ctx, &models.Employee{EmployeeID: "E1", Name: "Asha"})
	require.NoError(t, err)
	_, err = s.AppendAlert(ctx, "E1", models.Alert{AlertID: "A1", Message: "Restock aisle 3"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "E1"))

	_, err = s.GetAlert(ctx, "A1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	alerts, err := s.ListAlerts(ctx, store.AlertFilter{})
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestListAlertsByEmployee(t *testing.T) {
	s := store.NewMemory().Employees()
	ctx := context.Background()

	for _, id := range []string{"E1", "E2"} {
		_, err := s.Create(ctx, &models.Employee{EmployeeID: id, Name: "Staff " + id})
		require.NoError(t, err)
	}
	_, err := s.AppendAlert(ctx, "E1", models.Alert{AlertID: "A1"})
	require.NoError(t, err)
	_, err = s.AppendAlert(ctx, "E2", models.Alert{AlertID: "A2"})
	require.NoError(t, err)
	_, err = s.AppendAlert(ctx, "E1", models.Alert{AlertID: "A3"})
	require.NoError(t, err)

	alerts, err := s.ListAlerts(ctx, store.AlertFilter{EmployeeID: "E1"})
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "A1", alerts[0].AlertID)
	assert.Equal(t, "A3", alerts[1].AlertID)
}

func TestEmployeeDuplicateAlertIDsRejected(t *testing.T) {
	s := store.NewMemory().Employees()
	ctx := context.Background()

	_, err := s.Create(ctx, &models.Employee{
		EmployeeID: "E1",
		Name:       "Asha",
		Alerts: []models.Alert{
			{AlertID: "A1", Message: "first"},
			{AlertID: "A1", Message: "second"},
		},
	})
	require.Error(t, err)
	assert.True(t, store.IsValidation(err))
}

func TestPartialUpdateKeepsOtherFields(t *testing.T) {
	s := store.NewMemory().Products()
	ctx := context.Background()

	_, err := s.Create(ctx, &models.Product{ProductID: "P1", Name: "Basmati Rice", Category: "grains", Price: 12.5, Stock: 40})
	require.NoError(t, err)

	newStock := 35
	updated, err := s.Update(ctx, "P1", models.ProductUpdate{Stock: &newStock})
	require.NoError(t, err)
	assert.Equal(t, 35, updated.Stock)
	assert.Equal(t, "Basmati Rice", updated.Name)
	assert.Equal(t, 12.5, updated.Price)
}

func TestUserStore(t *testing.T) {
	s := store.NewMemory().Users()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, &models.User{Name: "Asha", Email: "asha@example.com", Password: "hash"})
	require.NoError(t, err)
	assert.Equal(t, "employee", created.Role)

	_, err = s.CreateUser(ctx, &models.User{Name: "Asha Again", Email: "asha@example.com", Password: "hash"})
	assert.ErrorIs(t, err, store.ErrConflict)

	got, err := s.GetUserByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}
