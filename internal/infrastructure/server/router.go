package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/proximity-api/internal/adapter/handler"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/observability"
)

type Router struct {
	engine         *gin.Engine
	placeHandler   *handler.PlaceHandler
	geoHandler     *handler.GeoHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	logger         *zap.Logger
}

type RouterConfig struct {
	PlaceHandler   *handler.PlaceHandler
	GeoHandler     *handler.GeoHandler
	AuthMiddleware *middleware.AuthMiddleware
	// RateLimiter is optional. Nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
	Logger      *zap.Logger
	Environment string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:         engine,
		placeHandler:   cfg.PlaceHandler,
		geoHandler:     cfg.GeoHandler,
		authMiddleware: cfg.AuthMiddleware,
		rateLimiter:    cfg.RateLimiter,
		logger:         cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Metrics())
	r.engine.Use(middleware.CORS())
}

func (r *Router) limit() gin.HandlerFunc {
	if r.rateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.rateLimiter.Limit()
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.engine.GET("/metrics", gin.WrapH(observability.MetricsHandler()))

	api := r.engine.Group("/api/v1")
	{
		geo := api.Group("/geo")
		geo.Use(r.limit())
		{
			geo.GET("/distance", r.geoHandler.Distance)
			geo.GET("/bounds", r.geoHandler.Bounds)
			geo.GET("/convert", r.geoHandler.Convert)
		}

		places := api.Group("/places")
		{
			places.GET("", r.limit(), r.placeHandler.List)
			places.GET("/nearby", r.limit(), r.placeHandler.Nearby)
			places.GET("/:id", r.limit(), r.placeHandler.Get)
		}

		// Rate limited after RequireAuth so the key is the client id.
		writes := api.Group("/places")
		writes.Use(r.authMiddleware.RequireAuth(), r.limit())
		{
			writes.POST("", r.placeHandler.Create)
			writes.PUT("/:id", r.placeHandler.Update)
			writes.DELETE("/:id", r.placeHandler.Delete)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
