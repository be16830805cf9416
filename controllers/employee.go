package controllers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"store-management/models"
	"store-management/store"
)

// EmployeeController handles employee-related requests. An employee
// document carries its alerts, so deleting an employee removes them too.
type EmployeeController struct {
	Store  store.EmployeeStore
	Logger *logrus.Logger
}

// NewEmployeeController creates a new EmployeeController.
func NewEmployeeController(s store.Store, logger *logrus.Logger) *EmployeeController {
	return &EmployeeController{Store: s.Employees(), Logger: logger}
}

// GetEmployees retrieves all employees.
func (ec *EmployeeController) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	employees, err := ec.Store.List(ctx)
	if err != nil {
		respondWithStoreError(w, ec.Logger, err, "Employee")
		return
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	respondWithJSON(w, http.StatusOK, employees)
}

// GetEmployeeByID retrieves a single employee by employee ID.
func (ec *EmployeeController) GetEmployeeByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	employee, err := ec.Store.Get(ctx, id)
	if err != nil {
		respondWithStoreError(w, ec.Logger, err, "Employee")
		return
	}
	respondWithJSON(w, http.StatusOK, employee)
}

// CreateEmployee handles adding a new employee.
func (ec *EmployeeController) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var employee models.Employee
	if err := decodeBody(r, &employee); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	created, err := ec.Store.Create(ctx, &employee)
	if err != nil {
		respondWithStoreError(w, ec.Logger, err, "Employee")
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// UpdateEmployee handles updating an employee, including replacing its
// alert sequence.
func (ec *EmployeeController) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var update models.EmployeeUpdate
	if err := decodeBody(r, &update); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	updated, err := ec.Store.Update(ctx, id, update)
	if err != nil {
		respondWithStoreError(w, ec.Logger, err, "Employee")
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// DeleteEmployee handles deleting an employee and, with it, its alerts.
func (ec *EmployeeController) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	if err := ec.Store.Delete(ctx, id); err != nil {
		respondWithStoreError(w, ec.Logger, err, "Employee")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
}
