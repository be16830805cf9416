package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"store-management/models"
)

// Mongo is the MongoDB-backed Store. Each entity lives in its own
// collection with a unique index on its natural key; alerts live
// inside their parent employee document.
type Mongo struct {
	customers *mongo.Collection
	products  *mongo.Collection
	orders    *mongo.Collection
	employees *mongo.Collection
	users     *mongo.Collection
}

// NewMongo builds a Mongo store on the given database and ensures the
// natural-key unique indexes exist.
func NewMongo(ctx context.Context, client *mongo.Client, dbName string) (*Mongo, error) {
	db := client.Database(dbName)
	m := &Mongo{
		customers: db.Collection("customers"),
		products:  db.Collection("products"),
		orders:    db.Collection("orders"),
		employees: db.Collection("employees"),
		users:     db.Collection("users"),
	}
	if err := m.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mongo) ensureIndexes(ctx context.Context) error {
	unique := func(coll *mongo.Collection, key string) error {
		_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("ensure unique index %s.%s: %w", coll.Name(), key, err)
		}
		return nil
	}
	if err := unique(m.customers, "phone"); err != nil {
		return err
	}
	if err := unique(m.products, "productId"); err != nil {
		return err
	}
	if err := unique(m.orders, "orderId"); err != nil {
		return err
	}
	if err := unique(m.employees, "employeeId"); err != nil {
		return err
	}
	return unique(m.users, "email")
}

func (m *Mongo) Customers() CustomerStore { return &mongoCustomers{coll: m.customers} }
func (m *Mongo) Products() ProductStore   { return &mongoProducts{coll: m.products} }
func (m *Mongo) Orders() OrderStore       { return &mongoOrders{coll: m.orders} }
func (m *Mongo) Employees() EmployeeStore { return &mongoEmployees{coll: m.employees} }
func (m *Mongo) Users() UserStore         { return &mongoUsers{coll: m.users} }

// insertionOrder sorts by _id, which grows monotonically with inserts.
var insertionOrder = options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

func mapWriteErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrConflict
	}
	return err
}

func mapReadErr(err error) error {
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

// ---- customers ----

type mongoCustomers struct {
	coll *mongo.Collection
}

func (s *mongoCustomers) List(ctx context.Context) ([]models.Customer, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, insertionOrder)
	if err != nil {
		return nil, err
	}
	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *mongoCustomers) Get(ctx context.Context, phone string) (*models.Customer, error) {
	var c models.Customer
	if err := s.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&c); err != nil {
		return nil, mapReadErr(err)
	}
	return &c, nil
}

func (s *mongoCustomers) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	c := *customer
	if err := prepareCustomer(&c, time.Now().UTC()); err != nil {
		return nil, err
	}
	result, err := s.coll.InsertOne(ctx, c)
	if err != nil {
		return nil, mapWriteErr(err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		c.ID = id
	}
	return &c, nil
}

func (s *mongoCustomers) Update(ctx context.Context, phone string, update models.CustomerUpdate) (*models.Customer, error) {
	c, err := s.Get(ctx, phone)
	if err != nil {
		return nil, err
	}
	if err := applyCustomerUpdate(c, update, time.Now().UTC()); err != nil {
		return nil, err
	}
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"phone": phone}, c); err != nil {
		return nil, mapWriteErr(err)
	}
	return c, nil
}

func (s *mongoCustomers) Delete(ctx context.Context, phone string) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"phone": phone})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- products ----

type mongoProducts struct {
	coll *mongo.Collection
}

func (s *mongoProducts) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	cursor, err := s.coll.Find(ctx, query, insertionOrder)
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *mongoProducts) Get(ctx context.Context, productID string) (*models.Product, error) {
	var p models.Product
	if err := s.coll.FindOne(ctx, bson.M{"productId": productID}).Decode(&p); err != nil {
		return nil, mapReadErr(err)
	}
	return &p, nil
}

func (s *mongoProducts) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	p := *product
	if err := prepareProduct(&p, time.Now().UTC()); err != nil {
		return nil, err
	}
	result, err := s.coll.InsertOne(ctx, p)
	if err != nil {
		return nil, mapWriteErr(err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		p.ID = id
	}
	return &p, nil
}

func (s *mongoProducts) Update(ctx context.Context, productID string, update models.ProductUpdate) (*models.Product, error) {
	p, err := s.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := applyProductUpdate(p, update, time.Now().UTC()); err != nil {
		return nil, err
	}
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"productId": productID}, p); err != nil {
		return nil, mapWriteErr(err)
	}
	return p, nil
}

func (s *mongoProducts) Delete(ctx context.Context, productID string) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"productId": productID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- orders ----

type mongoOrders struct {
	coll *mongo.Collection
}

func (s *mongoOrders) List(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	query := bson.M{}
	if filter.CustomerID != "" {
		query["customerId"] = filter.CustomerID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.StartDate != nil || filter.EndDate != nil {
		createdAt := bson.M{}
		if filter.StartDate != nil {
			createdAt["$gte"] = *filter.StartDate
		}
		if filter.EndDate != nil {
			createdAt["$lte"] = *filter.EndDate
		}
		query["createdAt"] = createdAt
	}
	cursor, err := s.coll.Find(ctx, query, insertionOrder)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *mongoOrders) Get(ctx context.Context, orderID string) (*models.Order, error) {
	var o models.Order
	if err := s.coll.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&o); err != nil {
		return nil, mapReadErr(err)
	}
	return &o, nil
}

func (s *mongoOrders) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	o := *order
	if err := prepareOrder(&o, time.Now().UTC()); err != nil {
		return nil, err
	}
	result, err := s.coll.InsertOne(ctx, o)
	if err != nil {
		return nil, mapWriteErr(err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		o.ID = id
	}
	return &o, nil
}

func (s *mongoOrders) Update(ctx context.Context, orderID string, update models.OrderUpdate) (*models.Order, error) {
	o, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := applyOrderUpdate(o, update, time.Now().UTC()); err != nil {
		return nil, err
	}
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"orderId": orderID}, o); err != nil {
		return nil, mapWriteErr(err)
	}
	return o, nil
}

func (s *mongoOrders) Delete(ctx context.Context, orderID string) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"orderId": orderID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- employees and embedded alerts ----

type mongoEmployees struct {
	coll *mongo.Collection
}

func (s *mongoEmployees) List(ctx context.Context) ([]models.Employee, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, insertionOrder)
	if err != nil {
		return nil, err
	}
	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *mongoEmployees) Get(ctx context.Context, employeeID string) (*models.Employee, error) {
	var e models.Employee
	if err := s.coll.FindOne(ctx, bson.M{"employeeId": employeeID}).Decode(&e); err != nil {
		return nil, mapReadErr(err)
	}
	return &e, nil
}

func (s *mongoEmployees) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	e := cloneEmployee(*employee)
	if err := prepareEmployee(&e, time.Now().UTC()); err != nil {
		return nil, err
	}
	result, err := s.coll.InsertOne(ctx, e)
	if err != nil {
		return nil, mapWriteErr(err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		e.ID = id
	}
	return &e, nil
}

func (s *mongoEmployees) Update(ctx context.Context, employeeID string, update models.EmployeeUpdate) (*models.Employee, error) {
	e, err := s.Get(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if err := applyEmployeeUpdate(e, update, time.Now().UTC()); err != nil {
		return nil, err
	}
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"employeeId": employeeID}, e); err != nil {
		return nil, mapWriteErr(err)
	}
	return e, nil
}

func (s *mongoEmployees) Delete(ctx context.Context, employeeID string) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"employeeId": employeeID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoEmployees) ListAlerts(ctx context.Context, filter AlertFilter) ([]models.EmployeeAlert, error) {
	query := bson.M{}
	if filter.EmployeeID != "" {
		query["employeeId"] = filter.EmployeeID
	}
	cursor, err := s.coll.Find(ctx, query, insertionOrder)
	if err != nil {
		return nil, err
	}
	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	out := make([]models.EmployeeAlert, 0)
	for _, e := range employees {
		for _, a := range e.Alerts {
			out = append(out, models.EmployeeAlert{EmployeeID: e.EmployeeID, Alert: a})
		}
	}
	return out, nil
}

func (s *mongoEmployees) GetAlert(ctx context.Context, alertID string) (*models.EmployeeAlert, error) {
	var e models.Employee
	if err := s.coll.FindOne(ctx, bson.M{"alerts.alertId": alertID}).Decode(&e); err != nil {
		return nil, mapReadErr(err)
	}
	for _, a := range e.Alerts {
		if a.AlertID == alertID {
			return &models.EmployeeAlert{EmployeeID: e.EmployeeID, Alert: a}, nil
		}
	}
	return nil, ErrNotFound
}

func (s *mongoEmployees) AppendAlert(ctx context.Context, employeeID string, alert models.Alert) (*models.EmployeeAlert, error) {
	normalizeAlert(&alert, time.Now().UTC())
	if err := validateDoc(&alert); err != nil {
		return nil, err
	}
	filter := bson.M{
		"employeeId":     employeeID,
		"alerts.alertId": bson.M{"$ne": alert.AlertID},
	}
	update := bson.M{
		"$push": bson.M{"alerts": alert},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		// Either the employee is missing or the alert ID is taken.
		count, err := s.coll.CountDocuments(ctx, bson.M{"employeeId": employeeID})
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrNotFound
		}
		return nil, ErrConflict
	}
	return &models.EmployeeAlert{EmployeeID: employeeID, Alert: alert}, nil
}

func (s *mongoEmployees) UpdateAlert(ctx context.Context, alertID string, update models.AlertUpdate) (*models.EmployeeAlert, error) {
	parent, err := s.GetAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}
	a := parent.Alert
	if err := applyAlertUpdate(&a, update); err != nil {
		return nil, err
	}
	result, err := s.coll.UpdateOne(ctx,
		bson.M{"alerts.alertId": alertID},
		bson.M{"$set": bson.M{"alerts.$": a, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return &models.EmployeeAlert{EmployeeID: parent.EmployeeID, Alert: a}, nil
}

func (s *mongoEmployees) RemoveAlert(ctx context.Context, alertID string) error {
	result, err := s.coll.UpdateOne(ctx,
		bson.M{"alerts.alertId": alertID},
		bson.M{
			"$pull": bson.M{"alerts": bson.M{"alertId": alertID}},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- users ----

type mongoUsers struct {
	coll *mongo.Collection
}

func (s *mongoUsers) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, insertionOrder)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUsers) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, mapReadErr(err)
	}
	return &u, nil
}

func (s *mongoUsers) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	u := *user
	if err := prepareUser(&u, time.Now().UTC()); err != nil {
		return nil, err
	}
	result, err := s.coll.InsertOne(ctx, u)
	if err != nil {
		return nil, mapWriteErr(err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		u.ID = id
	}
	return &u, nil
}
