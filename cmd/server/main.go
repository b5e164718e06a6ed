package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"ouibooking.backend/internal/config"
	"ouibooking.backend/internal/infrastructure/repositories"
	"ouibooking.backend/internal/infrastructure/storage"
	"ouibooking.backend/internal/interfaces/http/handlers"
	"ouibooking.backend/internal/interfaces/http/middleware"
	"ouibooking.backend/internal/usecases"
	"ouibooking.backend/pkg/jwt"
	"ouibooking.backend/pkg/logger"
	"ouibooking.backend/pkg/redis"
)

var (
	loadDotenv      = godotenv.Load
	loadCfg         = config.Load
	initLog         = logger.Init
	initRedis       = redis.Init
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Snapshot storage backend
	store, err := openSnapshotStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open snapshot store: %w", err)
	}
	logger.Info(context.Background(), "Snapshot store ready", zap.String("backend", cfg.Storage.Backend))

	// Redis-backed sessions are optional
	var sessionStore *redis.SessionStore
	if cfg.Redis.Enabled {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		sessionStore, err = newSessionStore(cfg.Security.SessionEncryptionKey)
		if err != nil {
			return fmt.Errorf("failed to initialize session store: %w", err)
		}
		logger.Info(context.Background(), "Redis sessions enabled")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	ctx := context.Background()
	userRepo, err := repositories.NewUserRepository(ctx, store)
	if err != nil {
		return fmt.Errorf("failed to load user store: %w", err)
	}
	botRepo, err := repositories.NewBotRepository(ctx, store)
	if err != nil {
		return fmt.Errorf("failed to load bot store: %w", err)
	}

	// Seed demo accounts on an empty store
	if cfg.Demo.Seed {
		if err := repositories.SeedDemoData(ctx, userRepo, botRepo); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, sessionStore, cfg.JWT.RefreshExpiry)
	userUsecase := usecases.NewUserUsecase(userRepo, botRepo)
	botUsecase := usecases.NewBotUsecase(botRepo)
	wizardUsecase := usecases.NewWizardUsecase(botUsecase)
	dashboardUsecase := usecases.NewDashboardUsecase(userRepo, botRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)
	botHandler := handlers.NewBotHandler(botUsecase)
	wizardHandler := handlers.NewWizardHandler(wizardUsecase)
	taxonomyHandler := handlers.NewTaxonomyHandler()
	dashboardHandler := handlers.NewDashboardHandler(dashboardUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService, sessionStore)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.LanguageMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:      authHandler,
		userHandler:      userHandler,
		botHandler:       botHandler,
		wizardHandler:    wizardHandler,
		taxonomyHandler:  taxonomyHandler,
		dashboardHandler: dashboardHandler,
		authMiddleware:   authMiddleware,
	})

	log.Printf("🚀 OuiBooking Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// openSnapshotStore picks the snapshot backend from configuration
func openSnapshotStore(cfg *config.Config) (storage.SnapshotStore, error) {
	switch cfg.Storage.Backend {
	case config.StorageFile:
		return storage.NewFileStore(cfg.Storage.Dir)
	case config.StorageSQLite:
		db, err := storage.OpenSQLite(cfg.Storage.SQLite)
		if err != nil {
			return nil, err
		}
		return storage.NewGormStore(db)
	case config.StoragePostgres:
		db, err := storage.OpenPostgres(cfg.Database.URL())
		if err != nil {
			return nil, err
		}
		return storage.NewGormStore(db)
	case config.StorageMemory:
		return storage.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
