package app

import (
	"database/sql"
	"fmt"

	"jobportal_backend/database"
	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/config"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/routes"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migrations applied")

	router := SetupRouter(cfg, gormDB, sqlDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full handler graph on the given connections.
// Tests call it with their own config and database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	issuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	mailer := email.NewProvider(cfg.Email)
	clock := services.SystemClock{}

	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	appRepo := repositories.NewApplicationRepository(gormDB)
	savedRepo := repositories.NewSavedJobRepository(gormDB)
	listingRepo := repositories.NewListingRepository(sqlDB)

	authService := services.NewAuthService(userRepo, profileRepo, issuer, mailer)
	listingService := services.NewListingService(listingRepo, clock)
	jobService := services.NewJobService(jobRepo, profileRepo, appRepo, savedRepo, listingRepo, clock)
	appService := services.NewApplicationService(appRepo, jobRepo, profileRepo, userRepo, listingRepo, mailer, clock)
	savedService := services.NewSavedJobService(savedRepo, jobRepo, listingRepo, clock)
	profileService := services.NewProfileService(profileRepo, listingRepo, clock)
	dashboardService := services.NewDashboardService(jobRepo, appRepo, savedRepo)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		Auth:        handlers.NewAuthHandler(base, authService),
		Listing:     handlers.NewListingHandler(base, listingService, profileService),
		Job:         handlers.NewJobHandler(base, jobService),
		Application: handlers.NewApplicationHandler(base, appService),
		SavedJob:    handlers.NewSavedJobHandler(base, savedService),
		Profile:     handlers.NewProfileHandler(base, profileService),
		Dashboard:   handlers.NewDashboardHandler(base, dashboardService),
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, appHandlers, issuer)
	return router
}
