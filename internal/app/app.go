// Package app wires the process together: config, logger, database,
// partition registry, repositories, services, handlers, routes.
package app

import (
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/partition"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := storage.Open(cfg)
	if err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	defer storage.Close(db)
	logger.Info("Database connected")

	if err := storage.Migrate(db); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	router := BuildRouter(cfg, db)

	address := cfg.Address()
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// BuildRouter assembles the full HTTP stack around an open database
// handle. Split out from Run so tests can build a router against their
// own database.
func BuildRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := partition.NewRegistry(db, cfg.RegistryTTL())
	if err := registry.Refresh(); err != nil {
		logger.Fatal("Partition discovery failed", "error", err)
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.AccessTTL(), cfg.RefreshTTL())

	userRepo := repositories.NewUserRepository(db)
	workerRepo := repositories.NewWorkerRepository(db)
	employerRepo := repositories.NewEmployerRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	jobRepo := repositories.NewJobRepository(db, registry)
	applicationRepo := repositories.NewApplicationRepository(db)
	activityRepo := repositories.NewActivityLogRepository(db)

	authService := services.NewAuthService(userRepo, workerRepo, employerRepo, adminRepo, tokens)
	workerService := services.NewWorkerService(workerRepo, jobRepo, applicationRepo, employerRepo, userRepo)
	employerService := services.NewEmployerService(employerRepo, jobRepo, applicationRepo, workerRepo)
	adminService := services.NewAdminService(userRepo, workerRepo, employerRepo, adminRepo,
		jobRepo, applicationRepo, activityRepo, authService)
	statsService := services.NewStatsService(jobRepo, workerRepo, applicationRepo)

	appHandlers := handlers.NewAppHandlers(
		validator.New(),
		authService,
		workerService,
		employerService,
		adminService,
		statsService,
	)

	router := gin.New()
	router.Use(gin.Recovery())
	routes.Setup(router, appHandlers, tokens)
	return router
}
