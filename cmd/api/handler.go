package api

import (
	"safeguardian-backend/internal/admin"
	alertUsecasePkg "safeguardian-backend/internal/alert/usecase"
	authUsecasePkg "safeguardian-backend/internal/auth/usecase"
	contactUsecasePkg "safeguardian-backend/internal/contact/usecase"
	documentUsecasePkg "safeguardian-backend/internal/document/usecase"
	itemUsecasePkg "safeguardian-backend/internal/item/usecase"
	locationUsecasePkg "safeguardian-backend/internal/location/usecase"
	"safeguardian-backend/internal/security"
	"safeguardian-backend/pkg/config"
	"safeguardian-backend/pkg/fcm"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	authUsecase     authUsecasePkg.AuthUsecase
	contactUsecase  contactUsecasePkg.ContactUsecase
	alertUsecase    alertUsecasePkg.AlertUsecase
	itemUsecase     itemUsecasePkg.ItemUsecase
	documentUsecase documentUsecasePkg.DocumentUsecase
	locationUsecase locationUsecasePkg.LocationUsecase
	adminHandler    *admin.Handler
	auditor         security.Auditor
	config          *config.Config
	log             *zap.Logger
}

func NewHandler(
	db *gorm.DB,
	authUc authUsecasePkg.AuthUsecase,
	contactUc contactUsecasePkg.ContactUsecase,
	alertUc alertUsecasePkg.AlertUsecase,
	itemUc itemUsecasePkg.ItemUsecase,
	documentUc documentUsecasePkg.DocumentUsecase,
	locationUc locationUsecasePkg.LocationUsecase,
	auditor security.Auditor,
	cfg *config.Config,
	log *zap.Logger,
) *Handler {
	// Push delivery is optional: without credentials the alert flow still
	// works, it just skips device notifications.
	if cfg.FirebaseCredentials != "" {
		pushClient, err := fcm.NewClient(cfg.FirebaseCredentials, log)
		if err != nil {
			log.Warn("failed to initialize push client, device notifications disabled", zap.Error(err))
		} else {
			alertUc.SetPushService(pushClient)
		}
	} else {
		log.Info("FIREBASE_CREDENTIALS not set, device notifications disabled")
	}

	return &Handler{
		authUsecase:     authUc,
		contactUsecase:  contactUc,
		alertUsecase:    alertUc,
		itemUsecase:     itemUc,
		documentUsecase: documentUc,
		locationUsecase: locationUc,
		adminHandler:    admin.NewHandler(db, authUc),
		auditor:         auditor,
		config:          cfg,
		log:             log,
	}
}

func (h *Handler) Start(addr string) error {
	if !h.config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
