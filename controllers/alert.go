package controllers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"store-management/models"
	"store-management/store"
)

// AlertNotifier delivers a best-effort email when an alert is created.
type AlertNotifier interface {
	SendAlertNotification(toEmail string, alert models.Alert) error
}

// AlertController handles the top-level alert endpoints. Alerts are
// embedded in their parent employee, so every operation here goes
// through the employee store; an alert ID addresses the embedded
// element across all employees.
type AlertController struct {
	Store    store.EmployeeStore
	Logger   *logrus.Logger
	Notifier AlertNotifier
}

// NewAlertController creates a new AlertController. notifier may be nil
// when no email provider is configured.
func NewAlertController(s store.Store, logger *logrus.Logger, notifier AlertNotifier) *AlertController {
	return &AlertController{Store: s.Employees(), Logger: logger, Notifier: notifier}
}

// GetAlerts retrieves alerts across all employees, optionally filtered
// to one employee.
func (ac *AlertController) GetAlerts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	filter := store.AlertFilter{EmployeeID: r.URL.Query().Get("employeeId")}
	alerts, err := ac.Store.ListAlerts(ctx, filter)
	if err != nil {
		respondWithStoreError(w, ac.Logger, err, "Alert")
		return
	}
	respondWithJSON(w, http.StatusOK, alerts)
}

// GetAlertByID retrieves a single alert by alert ID.
func (ac *AlertController) GetAlertByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	alert, err := ac.Store.GetAlert(ctx, id)
	if err != nil {
		respondWithStoreError(w, ac.Logger, err, "Alert")
		return
	}
	respondWithJSON(w, http.StatusOK, alert)
}

// CreateAlert appends an alert to the employee named in the body.
func (ac *AlertController) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var body models.EmployeeAlert
	if err := decodeBody(r, &body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.EmployeeID == "" {
		respondWithError(w, http.StatusBadRequest, "employeeId is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	created, err := ac.Store.AppendAlert(ctx, body.EmployeeID, body.Alert)
	if err != nil {
		respondWithStoreError(w, ac.Logger, err, "Alert")
		return
	}

	ac.notify(ctx, created)
	respondWithJSON(w, http.StatusCreated, created)
}

// notify emails the owning employee about a new alert. Failures are
// logged and never surfaced to the API caller; the alert's delivery
// status only changes through an explicit update.
func (ac *AlertController) notify(ctx context.Context, alert *models.EmployeeAlert) {
	if ac.Notifier == nil {
		return
	}
	employee, err := ac.Store.Get(ctx, alert.EmployeeID)
	if err != nil || employee.Email == "" {
		return
	}
	if err := ac.Notifier.SendAlertNotification(employee.Email, alert.Alert); err != nil {
		ac.Logger.WithError(err).WithFields(logrus.Fields{
			"employeeId": alert.EmployeeID,
			"alertId":    alert.AlertID,
		}).Warn("alert notification email failed")
	}
}

// UpdateAlert handles updating an alert, typically flipping its status
// from pending to delivered.
func (ac *AlertController) UpdateAlert(w http.ResponseWriter, r *http.Request) {
	var update models.AlertUpdate
	if err := decodeBody(r, &update); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	updated, err := ac.Store.UpdateAlert(ctx, id, update)
	if err != nil {
		respondWithStoreError(w, ac.Logger, err, "Alert")
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// DeleteAlert removes an alert from its parent employee.
func (ac *AlertController) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	if err := ac.Store.RemoveAlert(ctx, id); err != nil {
		respondWithStoreError(w, ac.Logger, err, "Alert")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Alert deleted successfully"})
}
