package routes

import (
	"context"
	"fmt"

	"maintenance-tracker-backend/internal/api/handlers"
	"maintenance-tracker-backend/internal/api/middleware"
	"maintenance-tracker-backend/internal/auth"
	"maintenance-tracker-backend/internal/calendar"
	"maintenance-tracker-backend/internal/config"
	"maintenance-tracker-backend/internal/database"
	"maintenance-tracker-backend/internal/logger"
	"maintenance-tracker-backend/internal/metrics"
	"maintenance-tracker-backend/internal/notify"
	"maintenance-tracker-backend/internal/repository"
	"maintenance-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	metrics.Init()

	validate := validator.New()
	normalizer := calendar.NewNormalizer(calendar.SystemClock{}, cfg.Location())

	notifier, err := newNotifier(cfg)
	if err != nil {
		return nil, err
	}

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg.JWTSecret, cfg.JWTIssuer))
	if err != nil {
		return nil, err
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize repositories
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	operatorRepo := repository.NewOperatorRepository(db)

	// Initialize services
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, notifier, normalizer, validate)
	catalogService := service.NewCatalogService(equipmentRepo, operatorRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}, Version)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/api/auth/validate", authHandler.ValidateToken)

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		maintenance := v1.Group("/maintenance")
		{
			maintenance.POST("/validate", maintenanceHandler.ValidateMaintenance)
			maintenance.POST("", maintenanceHandler.CreateMaintenance)
			maintenance.GET("", maintenanceHandler.ListMaintenance)
			maintenance.GET("/calendar", maintenanceHandler.GetCalendar)
			maintenance.GET("/export", maintenanceHandler.ExportMaintenance)
			maintenance.GET("/:id", maintenanceHandler.GetMaintenance)
			maintenance.PUT("/:id", maintenanceHandler.UpdateMaintenance)
			maintenance.DELETE("/:id", maintenanceHandler.DeleteMaintenance)
		}

		v1.GET("/equipment", catalogHandler.ListEquipment)
		v1.GET("/operators", catalogHandler.ListOperators)
	}

	return router, nil
}

// newNotifier picks the mail API when a key is configured and the log otherwise
func newNotifier(cfg *config.Config) (notify.Notifier, error) {
	if !cfg.MailEnabled() {
		logger.New().Warn("MAIL_API_KEY not set; maintenance notifications will only be logged")
		return notify.NewLogNotifier(), nil
	}
	notifier, err := notify.NewResendNotifier(cfg.MailAPIKey, cfg.MailFrom, cfg.MailTimeout(), notify.WithAPIURL(cfg.MailAPIURL))
	if err != nil {
		return nil, fmt.Errorf("configure mail notifier: %w", err)
	}
	return notifier, nil
}
