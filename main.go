package main

import (
	"log"

	api "safeguardian-backend/cmd/api"
	alertdomain "safeguardian-backend/internal/alert/domain"
	alertRepo "safeguardian-backend/internal/alert/repository"
	alertUsecase "safeguardian-backend/internal/alert/usecase"
	authdomain "safeguardian-backend/internal/auth/domain"
	authRepo "safeguardian-backend/internal/auth/repository"
	authUsecase "safeguardian-backend/internal/auth/usecase"
	contactdomain "safeguardian-backend/internal/contact/domain"
	contactRepo "safeguardian-backend/internal/contact/repository"
	contactUsecase "safeguardian-backend/internal/contact/usecase"
	documentdomain "safeguardian-backend/internal/document/domain"
	documentRepo "safeguardian-backend/internal/document/repository"
	documentUsecase "safeguardian-backend/internal/document/usecase"
	itemdomain "safeguardian-backend/internal/item/domain"
	itemRepo "safeguardian-backend/internal/item/repository"
	itemUsecase "safeguardian-backend/internal/item/usecase"
	locationdomain "safeguardian-backend/internal/location/domain"
	locationRepo "safeguardian-backend/internal/location/repository"
	locationUsecase "safeguardian-backend/internal/location/usecase"
	"safeguardian-backend/internal/security"
	"safeguardian-backend/pkg/config"
	"safeguardian-backend/pkg/database"
	"safeguardian-backend/pkg/logger"
	"safeguardian-backend/pkg/ratelimit"
	"safeguardian-backend/pkg/token"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zlog.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.DeviceToken{},
		&security.Event{},
		&contactdomain.EmergencyContact{},
		&alertdomain.Alert{},
		&alertdomain.AlertNotification{},
		&itemdomain.Item{},
		&documentdomain.Document{},
		&documentdomain.DocumentShare{},
		&locationdomain.Location{},
	); err != nil {
		zlog.Fatal("failed to migrate database", zap.Error(err))
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	deviceRepository := authRepo.NewDeviceTokenRepository(db)
	contactRepository := contactRepo.NewContactRepository(db)
	alertRepository := alertRepo.NewAlertRepository(db)
	itemRepository := itemRepo.NewItemRepository(db)
	documentRepository := documentRepo.NewDocumentRepository(db)
	locationRepository := locationRepo.NewLocationRepository(db)

	// Request-gate infrastructure
	codec := token.NewCodec(cfg.JWTSecret)
	limiter, err := ratelimit.NewPerUser(cfg.RateLimit)
	if err != nil {
		zlog.Fatal("failed to initialize rate limiter", zap.Error(err), zap.String("rate", cfg.RateLimit))
	}
	auditor := security.NewAuditor(db, zlog)

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepository, deviceRepository, codec, limiter, auditor, cfg.TokenTTL)
	contactUc := contactUsecase.NewContactUsecase(contactRepository)
	alertUc := alertUsecase.NewAlertUsecase(alertRepository, contactRepository, deviceRepository, zlog)
	itemUc := itemUsecase.NewItemUsecase(itemRepository)
	documentUc := documentUsecase.NewDocumentUsecase(documentRepository, contactRepository)
	locationUc := locationUsecase.NewLocationUsecase(locationRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(db, authUc, contactUc, alertUc, itemUc, documentUc, locationUc, auditor, cfg, zlog)

	// Start server
	zlog.Info("server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
