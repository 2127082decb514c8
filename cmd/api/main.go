package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/proximity-api/internal/adapter/handler"
	"github.com/marcos-nsantos/proximity-api/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/proximity-api/internal/domain/valueobject"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/auth"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/cache"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/config"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/database"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/observability"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/server"
	"github.com/marcos-nsantos/proximity-api/internal/usecase/geo"
	"github.com/marcos-nsantos/proximity-api/internal/usecase/place"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	defaultUnit, err := valueobject.ParseDistanceUnit(cfg.Geo.DefaultUnit)
	if err != nil {
		logger.Fatal("invalid GEO_DEFAULT_UNIT", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath)
		if err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		logger.Info("migrations applied", zap.Strings("versions", applied))
	}

	// Repositories
	placeRepo := postgres.NewPlaceRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, logger)
	}

	// Use cases
	placeSvc := place.NewService(placeRepo, place.Options{
		DefaultNearbyLimit:  cfg.Geo.DefaultNearbyLimit,
		MaxNearbyLimit:      cfg.Geo.MaxNearbyResults,
		MaxSearchDistanceKM: cfg.Geo.MaxSearchDistanceKM,
	})
	geoSvc := geo.NewService()

	// Handlers
	placeHandler := handler.NewPlaceHandler(placeSvc, defaultUnit)
	geoHandler := handler.NewGeoHandler(geoSvc, defaultUnit)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	// Router
	router := server.NewRouter(server.RouterConfig{
		PlaceHandler:   placeHandler,
		GeoHandler:     geoHandler,
		AuthMiddleware: authMiddleware,
		RateLimiter:    rateLimiter,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	if err := srv.Start(ctx); err != nil {
		logger.Error("server error", zap.Error(err))
		return
	}

	logger.Info("server stopped")
}
