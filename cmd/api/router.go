package api

import (
	"net/http"

	alertDelivery "safeguardian-backend/internal/alert/delivery"
	"safeguardian-backend/internal/auth/delivery"
	authdomain "safeguardian-backend/internal/auth/domain"
	contactDelivery "safeguardian-backend/internal/contact/delivery"
	documentDelivery "safeguardian-backend/internal/document/delivery"
	itemDelivery "safeguardian-backend/internal/item/delivery"
	locationDelivery "safeguardian-backend/internal/location/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := delivery.NewAuthHandler(h.authUsecase)
	contactHandler := contactDelivery.NewContactHandler(h.contactUsecase)
	alertHandler := alertDelivery.NewAlertHandler(h.alertUsecase)
	itemHandler := itemDelivery.NewItemHandler(h.itemUsecase)
	documentHandler := documentDelivery.NewDocumentHandler(h.documentUsecase)
	locationHandler := locationDelivery.NewLocationHandler(h.locationUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", delivery.AuthMiddleware(h.authUsecase), authHandler.Profile)
			auth.GET("/profile", delivery.AuthMiddleware(h.authUsecase), authHandler.Profile)
			auth.PUT("/profile", delivery.AuthMiddleware(h.authUsecase), authHandler.UpdateProfile)
			auth.PUT("/password", delivery.AuthMiddleware(h.authUsecase), authHandler.ChangePassword)
		}

		// Device token routes (protected)
		devices := api.Group("/devices")
		devices.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			devices.POST("/register", authHandler.RegisterDevice)
			devices.DELETE("/:token", authHandler.UnregisterDevice)
		}

		// Emergency contact routes (protected)
		contacts := api.Group("/contacts")
		contacts.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			contacts.GET("", contactHandler.GetContacts)
			contacts.POST("", contactHandler.AddContact)
			contacts.PUT("/:id", contactHandler.UpdateContact)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
			contacts.POST("/:id/verify", contactHandler.VerifyContact)
		}

		// Alert routes. Responding is public: contacts follow the link from
		// the notification and do not hold an account token.
		api.POST("/alerts/:id/respond", alertHandler.Respond)

		alerts := api.Group("/alerts")
		alerts.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			alerts.GET("", alertHandler.GetAlerts)
			alerts.POST("", alertHandler.CreateAlert)
			alerts.GET("/:id/notifications", alertHandler.GetNotifications)
			alerts.PUT("/:id", alertHandler.UpdateStatus)
			alerts.PATCH("/:id/status", alertHandler.UpdateStatus)
		}

		// Tracked item routes (protected)
		items := api.Group("/items")
		items.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			items.GET("", itemHandler.GetItems)
			items.POST("", itemHandler.AddItem)
			items.PUT("/:id", itemHandler.UpdateItem)
			items.PATCH("/:id/lost", itemHandler.MarkLost)
			items.DELETE("/:id", itemHandler.DeleteItem)
		}

		// Document routes (protected)
		documents := api.Group("/documents")
		documents.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			documents.GET("", documentHandler.GetDocuments)
			documents.POST("", documentHandler.AddDocument)
			documents.GET("/:id/download", documentHandler.Download)
			documents.PUT("/:id", documentHandler.UpdateDocument)
			documents.DELETE("/:id", documentHandler.DeleteDocument)
			documents.POST("/:id/share", documentHandler.Share)
		}

		// Location routes (protected)
		locations := api.Group("/locations")
		locations.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			locations.POST("", locationHandler.RecordLocation)
			locations.GET("/history", locationHandler.History)
			locations.GET("/last", locationHandler.Last)
		}

		// Admin routes (protected, role-gated)
		adminGroup := api.Group("/admin")
		adminGroup.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			adminGroup.GET("/metrics",
				delivery.RequirePermission(authdomain.PermViewMetrics, h.auditor),
				h.adminHandler.Metrics)
			adminGroup.PUT("/users/:id/status",
				delivery.RequirePermission(authdomain.PermManageUsers, h.auditor),
				h.adminHandler.SetUserStatus)
		}
	}
}
