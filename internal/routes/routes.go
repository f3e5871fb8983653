package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-slots/internal/audit"
	"github.com/BruksfildServices01/barber-slots/internal/cache"
	"github.com/BruksfildServices01/barber-slots/internal/config"
	"github.com/BruksfildServices01/barber-slots/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-slots/internal/infra/repository"
	"github.com/BruksfildServices01/barber-slots/internal/middleware"
	ucScheduling "github.com/BruksfildServices01/barber-slots/internal/usecase/scheduling"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)
	slotsCache := cache.NewSlotsCache(cfg.RedisURL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES (SCHEDULING)
	// ======================================================
	setAvailabilityUC := ucScheduling.NewSetAvailability(
		schedulingRepo,
		auditDispatcher,
	)

	bookSlotsUC := ucScheduling.NewBookSlots(
		schedulingRepo,
		auditDispatcher,
		slotsCache,
	)

	listShopSlotsUC := ucScheduling.NewListShopSlots(
		schedulingRepo,
		slotsCache,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	shopHandler := handlers.NewShopHandler(db)
	barberHandler := handlers.NewBarberHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(setAvailabilityUC)
	bookingHandler := handlers.NewBookingHandler(bookSlotsUC)
	slotsHandler := handlers.NewSlotsHandler(listShopSlotsUC)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/shops", shopHandler.List)
		api.GET("/shops/owner/:owner_id", shopHandler.ListByOwner)
		api.GET("/shops/:shop_id/barbers", barberHandler.ListForShop)
		api.GET("/shops/:shop_id/slots", slotsHandler.ListForShop)

		api.POST("/bookings", bookingHandler.Book)

		// ------------------------------
		// PRIVATE (OWNER)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/shops", shopHandler.Create)
			secured.POST("/shops/:shop_id/barbers", barberHandler.Add)
			secured.POST("/availability/:barber_id", availabilityHandler.Set)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
