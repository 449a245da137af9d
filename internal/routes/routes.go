package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/amalynlocs/salon-api/internal/audit"
	"github.com/amalynlocs/salon-api/internal/config"
	"github.com/amalynlocs/salon-api/internal/handlers"
	"github.com/amalynlocs/salon-api/internal/kv"
	"github.com/amalynlocs/salon-api/internal/middleware"
	"github.com/amalynlocs/salon-api/internal/storage"
	ucAnalytics "github.com/amalynlocs/salon-api/internal/usecase/analytics"
	ucBooking "github.com/amalynlocs/salon-api/internal/usecase/booking"
	ucMedia "github.com/amalynlocs/salon-api/internal/usecase/media"
	ucStyle "github.com/amalynlocs/salon-api/internal/usecase/style"
)

func RegisterRoutes(r *gin.Engine, store kv.Store, blobs storage.BlobStore, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(store)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(store, auditDispatcher)
	updateBookingStatusUC := ucBooking.NewUpdateBookingStatus(store, auditDispatcher)

	activateStyleUC := ucStyle.NewActivateStyle(store, auditDispatcher)

	uploadUC := ucMedia.NewUpload(store, blobs, cfg, auditDispatcher)
	deleteImageUC := ucMedia.NewDelete(store, blobs, auditDispatcher)

	analyticsUC := ucAnalytics.NewSummary(store)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(store, cfg)
	publicHandler := handlers.NewPublicHandler(store, createBookingUC)

	bookingHandler := handlers.NewBookingHandler(store, createBookingUC, updateBookingStatusUC, auditDispatcher)
	productHandler := handlers.NewProductHandler(store, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(store, auditDispatcher)
	styleHandler := handlers.NewStyleHandler(store, activateStyleUC, auditDispatcher)
	imageHandler := handlers.NewImageHandler(store, uploadUC, deleteImageUC)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(store)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.POST("/auth/login", authHandler.Login)
	r.POST("/bookings", publicHandler.CreateBooking)
	r.GET("/active-style", publicHandler.ActiveStyle)

	// ======================================================
	// ADMIN
	// ======================================================
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		admin.GET("/bookings", bookingHandler.List)
		admin.POST("/bookings", bookingHandler.Create)
		admin.POST("/bookings/:id/status", bookingHandler.UpdateStatus)
		admin.DELETE("/bookings/:id", bookingHandler.Delete)

		admin.GET("/products", productHandler.List)
		admin.POST("/products", productHandler.Create)
		admin.PUT("/products/:id", productHandler.Update)
		admin.DELETE("/products/:id", productHandler.Delete)

		admin.GET("/services", serviceHandler.List)
		admin.POST("/services", serviceHandler.Create)
		admin.PUT("/services/:id", serviceHandler.Update)
		admin.DELETE("/services/:id", serviceHandler.Delete)

		admin.POST("/upload", imageHandler.Upload)
		admin.GET("/images", imageHandler.List)
		admin.DELETE("/images/:id", imageHandler.Delete)

		admin.GET("/styles", styleHandler.List)
		admin.POST("/styles", styleHandler.Create)
		admin.PUT("/styles/:id", styleHandler.Update)
		admin.POST("/styles/activate", styleHandler.Activate)
		admin.DELETE("/styles/:id", styleHandler.Delete)

		admin.GET("/analytics", analyticsHandler.Get)
		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
