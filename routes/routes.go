// routes/routes.go
package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"store-management/controllers"
	"store-management/middleware"
)

// RegisterRoutes mounts every resource router under /api and installs
// the catch-all 404 handler.
func RegisterRoutes(
	router *mux.Router,
	customerController *controllers.CustomerController,
	productController *controllers.ProductController,
	orderController *controllers.OrderController,
	employeeController *controllers.EmployeeController,
	alertController *controllers.AlertController,
	userController *controllers.UserController,
) {
	api := router.PathPrefix("/api").Subrouter()

	// Customer routes (keyed by phone number)
	api.HandleFunc("/customers", customerController.GetCustomers).Methods(http.MethodGet)
	api.HandleFunc("/customers", customerController.CreateCustomer).Methods(http.MethodPost)
	api.HandleFunc("/customers/{phone}", customerController.GetCustomerByPhone).Methods(http.MethodGet)
	api.HandleFunc("/customers/{phone}", customerController.UpdateCustomer).Methods(http.MethodPut)
	api.HandleFunc("/customers/{phone}", customerController.DeleteCustomer).Methods(http.MethodDelete)

	// Product routes
	api.HandleFunc("/products", productController.GetProducts).Methods(http.MethodGet)
	api.HandleFunc("/products", productController.CreateProduct).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", productController.GetProductByID).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", productController.UpdateProduct).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", productController.DeleteProduct).Methods(http.MethodDelete)

	// Order routes
	api.HandleFunc("/orders", orderController.GetOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders", orderController.CreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", orderController.GetOrderByID).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", orderController.UpdateOrder).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id}", orderController.DeleteOrder).Methods(http.MethodDelete)

	// Employee routes
	api.HandleFunc("/employees", employeeController.GetEmployees).Methods(http.MethodGet)
	api.HandleFunc("/employees", employeeController.CreateEmployee).Methods(http.MethodPost)
	api.HandleFunc("/employees/{id}", employeeController.GetEmployeeByID).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id}", employeeController.UpdateEmployee).Methods(http.MethodPut)
	api.HandleFunc("/employees/{id}", employeeController.DeleteEmployee).Methods(http.MethodDelete)

	// Alert routes (embedded in employees, addressed by alert ID)
	api.HandleFunc("/alerts", alertController.GetAlerts).Methods(http.MethodGet)
	api.HandleFunc("/alerts", alertController.CreateAlert).Methods(http.MethodPost)
	api.HandleFunc("/alerts/{id}", alertController.GetAlertByID).Methods(http.MethodGet)
	api.HandleFunc("/alerts/{id}", alertController.UpdateAlert).Methods(http.MethodPut)
	api.HandleFunc("/alerts/{id}", alertController.DeleteAlert).Methods(http.MethodDelete)

	// Public auth routes
	api.HandleFunc("/auth/register", userController.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", userController.Login).Methods(http.MethodPost)

	// Protected routes
	profile := api.PathPrefix("/auth/profile").Subrouter()
	profile.Use(middleware.AuthMiddleware)
	profile.HandleFunc("", userController.GetProfile).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/auth/users").Subrouter()
	admin.Use(middleware.AuthMiddleware, middleware.AdminMiddleware)
	admin.HandleFunc("", userController.GetUsers).Methods(http.MethodGet)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Route not found"})
	})
	router.NotFoundHandler = notFound
	router.MethodNotAllowedHandler = notFound
}
