// Package client wraps the store-management HTTP API: one method per
// resource operation, a single base URL resolved once at construction,
// and typed failures carrying the server's message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"store-management/models"
	"store-management/store"
)

// DefaultBaseURL is the development backend address used when no
// deployment value is configured.
const DefaultBaseURL = "http://localhost:3000/api"

// envBaseURL names the environment variable holding the deployed
// backend address.
const envBaseURL = "STORE_API_URL"

// APIError is a non-2xx response from the backend, carrying the
// server-supplied message when the body had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.Message)
}

// Config selects the backend the client talks to. An explicit BaseURL
// wins over the STORE_API_URL environment variable, which wins over
// the development default.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client issues requests against the store-management REST API. The
// base URL is fixed at construction and never changes.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a Client from cfg.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = os.Getenv(envBaseURL)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL reports the resolved backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request issues one HTTP call. query is appended only when non-empty,
// body is JSON-encoded when non-nil, and out is decoded from a success
// response when non-nil.
func (c *Client) request(ctx context.Context, method, endpoint string, query url.Values, body, out interface{}) error {
	fullURL := c.baseURL + endpoint
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil && msg.Message != "" {
			apiErr.Message = msg.Message
		} else {
			apiErr.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ---- customers ----

func (c *Client) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := c.request(ctx, http.MethodGet, "/customers", nil, nil, &customers)
	return customers, err
}

func (c *Client) GetCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var customer models.Customer
	if err := c.request(ctx, http.MethodGet, "/customers/"+url.PathEscape(phone), nil, nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	var created models.Customer
	if err := c.request(ctx, http.MethodPost, "/customers", nil, customer, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, phone string, updates models.CustomerUpdate) (*models.Customer, error) {
	var updated models.Customer
	if err := c.request(ctx, http.MethodPut, "/customers/"+url.PathEscape(phone), nil, updates, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, phone string) error {
	return c.request(ctx, http.MethodDelete, "/customers/"+url.PathEscape(phone), nil, nil, nil)
}

// ---- products ----

func productQuery(filter store.ProductFilter) url.Values {
	query := url.Values{}
	if filter.Name != "" {
		query.Set("name", filter.Name)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	return query
}

func (c *Client) GetProducts(ctx context.Context, filter store.ProductFilter) ([]models.Product, error) {
	var products []models.Product
	err := c.request(ctx, http.MethodGet, "/products", productQuery(filter), nil, &products)
	return products, err
}

func (c *Client) GetProductByID(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	if err := c.request(ctx, http.MethodGet, "/products/"+url.PathEscape(productID), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	var created models.Product
	if err := c.request(ctx, http.MethodPost, "/products", nil, product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, productID string, updates models.ProductUpdate) (*models.Product, error) {
	var updated models.Product
	if err := c.request(ctx, http.MethodPut, "/products/"+url.PathEscape(productID), nil, updates, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	return c.request(ctx, http.MethodDelete, "/products/"+url.PathEscape(productID), nil, nil, nil)
}

// ---- orders ----

func orderQuery(filter store.OrderFilter) url.Values {
	query := url.Values{}
	if filter.CustomerID != "" {
		query.Set("customerId", filter.CustomerID)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.StartDate != nil {
		query.Set("startDate", filter.StartDate.Format(time.RFC3339))
	}
	if filter.EndDate != nil {
		query.Set("endDate", filter.EndDate.Format(time.RFC3339))
	}
	return query
}

func (c *Client) GetOrders(ctx context.Context, filter store.OrderFilter) ([]models.Order, error) {
	var orders []models.Order
	err := c.request(ctx, http.MethodGet, "/orders", orderQuery(filter), nil, &orders)
	return orders, err
}

func (c *Client) GetOrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := c.request(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	var created models.Order
	if err := c.request(ctx, http.MethodPost, "/orders", nil, order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateOrder(ctx context.Context, orderID string, updates models.OrderUpdate) (*models.Order, error) {
	var updated models.Order
	if err := c.request(ctx, http.MethodPut, "/orders/"+url.PathEscape(orderID), nil, updates, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteOrder(ctx context.Context, orderID string) error {
	return c.request(ctx, http.MethodDelete, "/orders/"+url.PathEscape(orderID), nil, nil, nil)
}

// ---- employees ----

func (c *Client) GetEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	err := c.request(ctx, http.MethodGet, "/employees", nil, nil, &employees)
	return employees, err
}

func (c *Client) GetEmployeeByID(ctx context.Context, employeeID string) (*models.Employee, error) {
	var employee models.Employee
	if err := c.request(ctx, http.MethodGet, "/employees/"+url.PathEscape(employeeID), nil, nil, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) CreateEmployee(ctx context.Context, employee models.Employee) (*models.Employee, error) {
	var created models.Employee
	if err := c.request(ctx, http.MethodPost, "/employees", nil, employee, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, employeeID string, updates models.EmployeeUpdate) (*models.Employee, error) {
	var updated models.Employee
	if err := c.request(ctx, http.MethodPut, "/employees/"+url.PathEscape(employeeID), nil, updates, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, employeeID string) error {
	return c.request(ctx, http.MethodDelete, "/employees/"+url.PathEscape(employeeID), nil, nil, nil)
}

// ---- alerts ----

func alertQuery(filter store.AlertFilter) url.Values {
	query := url.Values{}
	if filter.EmployeeID != "" {
		query.Set("employeeId", filter.EmployeeID)
	}
	return query
}

func (c *Client) GetAlerts(ctx context.Context, filter store.AlertFilter) ([]models.EmployeeAlert, error) {
	var alerts []models.EmployeeAlert
	err := c.request(ctx, http.MethodGet, "/alerts", alertQuery(filter), nil, &alerts)
	return alerts, err
}

func (c *Client) GetAlertByID(ctx context.Context, alertID string) (*models.EmployeeAlert, error) {
	var alert models.EmployeeAlert
	if err := c.request(ctx, http.MethodGet, "/alerts/"+url.PathEscape(alertID), nil, nil, &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

func (c *Client) CreateAlert(ctx context.Context, alert models.EmployeeAlert) (*models.EmployeeAlert, error) {
	var created models.EmployeeAlert
	if err := c.request(ctx, http.MethodPost, "/alerts", nil, alert, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateAlert(ctx context.Context, alertID string, updates models.AlertUpdate) (*models.EmployeeAlert, error) {
	var updated models.EmployeeAlert
	if err := c.request(ctx, http.MethodPut, "/alerts/"+url.PathEscape(alertID), nil, updates, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteAlert(ctx context.Context, alertID string) error {
	return c.request(ctx, http.MethodDelete, "/alerts/"+url.PathEscape(alertID), nil, nil, nil)
}
