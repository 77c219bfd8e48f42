package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/idenegocios/barbershop-directory/internal/audit"
	"github.com/idenegocios/barbershop-directory/internal/cache"
	"github.com/idenegocios/barbershop-directory/internal/config"
	"github.com/idenegocios/barbershop-directory/internal/handlers"
	infraRepo "github.com/idenegocios/barbershop-directory/internal/infra/repository"
	"github.com/idenegocios/barbershop-directory/internal/middleware"
	ucStats "github.com/idenegocios/barbershop-directory/internal/usecase/stats"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	directoryRepo := infraRepo.NewDirectoryGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	statsCache := cache.New(cfg.RedisURL, 60*time.Second)

	// ======================================================
	// USE CASES
	// ======================================================
	getStatsUC := ucStats.NewGetStats(directoryRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	barbershopHandler := handlers.NewBarbershopHandler(directoryRepo, auditDispatcher)
	reviewHandler := handlers.NewReviewHandler(directoryRepo, auditDispatcher)
	statsHandler := handlers.NewStatsHandler(getStatsUC, statsCache)
	authHandler := handlers.NewAuthHandler(cfg)
	adminHandler := handlers.NewAdminHandler(directoryRepo, db, auditDispatcher)
	docsHandler := handlers.NewDocsHandler()

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		api.GET("/docs", docsHandler.Get)
		api.GET("/stats", statsHandler.Get)

		api.GET("/barbershops", barbershopHandler.List)
		api.POST("/barbershops", barbershopHandler.Create)
		api.GET("/barbershops/search", barbershopHandler.Search)
		api.GET("/barbershops/:id", barbershopHandler.Get)
		api.PUT("/barbershops/:id", barbershopHandler.Update)
		api.DELETE("/barbershops/:id", barbershopHandler.Delete)

		api.GET("/barbershops/:id/reviews", reviewHandler.List)
		api.POST("/barbershops/:id/reviews", reviewHandler.Create)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API ADMINISTRATIVA
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly())
		{
			admin.PATCH("/barbershops/:id/verify", adminHandler.Verify)
			admin.GET("/audit-logs", adminHandler.ListAuditLogs)
		}
	}
}
