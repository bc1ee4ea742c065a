package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "rentnest-backend/internal/api/http"
	"rentnest-backend/internal/config"
	"rentnest-backend/internal/logger"
	"rentnest-backend/internal/repository/postgres"
	"rentnest-backend/internal/security"
	"rentnest-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentNest Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	availabilitySvc := service.NewAvailabilityService(store.ContractRepository)
	contractSvc := service.NewContractService(
		store.ContractRepository,
		store.ListingRepository,
		store.RentalRequestRepository,
		store.UserRepository,
		availabilitySvc,
	)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)
	ratingSvc := service.NewRatingService(
		store.ReviewRepository,
		store.ContractRepository,
		store.ListingRepository,
		store.UserRepository,
		notificationSvc,
		emailSvc,
	)
	paymentSvc := service.NewPaymentService(
		store.PaymentRepository,
		store.RentalRequestRepository,
		store.ListingRepository,
		contractSvc,
		notificationSvc,
		emailSvc,
	)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)

	handlers := &httpapi.Handlers{
		Auth:         httpapi.NewAuthHandler(authSvc),
		Payment:      httpapi.NewPaymentHandler(paymentSvc),
		Review:       httpapi.NewReviewHandler(ratingSvc),
		Notification: httpapi.NewNotificationHandler(notificationSvc),
	}
	router := httpapi.NewRouter(handlers, tokenManager, cfg.Server.AllowedOrigins)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
