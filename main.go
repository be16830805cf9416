// main.go
package main

import (
	"context"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"store-management/config"
	"store-management/controllers"
	"store-management/middleware"
	"store-management/routes"
	"store-management/store"
	"store-management/utils"
)

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found. Proceeding with environment variables.")
	}

	cfg := config.Load()
	logger := newLogger(cfg)

	// Set the JWT secret key
	if cfg.JWTSecret != "" {
		utils.JwtKey = []byte(cfg.JWTSecret)
	}

	// Select the backing store: MongoDB when configured, in-memory otherwise
	var st store.Store
	if cfg.MongoURI != "" {
		client, err := utils.ConnectDB(cfg.MongoURI)
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to MongoDB")
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.WithError(err).Error("failed to disconnect from MongoDB")
			}
		}()

		mongoStore, err := store.NewMongo(context.Background(), client, cfg.MongoDatabase)
		if err != nil {
			logger.WithError(err).Fatal("failed to initialize MongoDB store")
		}
		st = mongoStore
		logger.WithField("database", cfg.MongoDatabase).Info("using MongoDB store")
	} else {
		st = store.NewMemory()
		logger.Warn("MONGODB_URI not set; using in-memory store")
	}

	// Initialize EmailService (nil when SENDGRID_API_KEY is unset)
	var notifier controllers.AlertNotifier
	if emailService := utils.NewEmailService(cfg.SendgridAPIKey, cfg.EmailSender); emailService != nil {
		notifier = emailService
	}

	// Initialize controllers
	customerController := controllers.NewCustomerController(st, logger)
	productController := controllers.NewProductController(st, logger)
	orderController := controllers.NewOrderController(st, logger)
	employeeController := controllers.NewEmployeeController(st, logger)
	alertController := controllers.NewAlertController(st, logger, notifier)
	userController := controllers.NewUserController(st, logger)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router,
		customerController,
		productController,
		orderController,
		employeeController,
		alertController,
		userController,
	)
	router.Use(middleware.RequestLogger(logger))

	// Cross-origin policy: only the configured front-end origins, with credentials
	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	)
	handler := middleware.Recover(logger)(cors(router))

	logger.WithField("port", cfg.Port).Info("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
