package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/routescrape/api/handler"
	"github.com/use-agent/routescrape/api/middleware"
	"github.com/use-agent/routescrape/cache"
	"github.com/use-agent/routescrape/config"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger
//	API:     Auth (if enabled) → RateLimit → BodyLimit
//
// Health endpoint is intentionally outside auth so monitoring probes always work.
func NewRouter(cfg *config.Config, cc *cache.Cache, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Server.Mode != gin.TestMode {
		r.Use(gin.Logger())
	}

	v1 := r.Group("/api/v1")

	v1.GET("/health", handler.Health(cc, startTime))

	protected := v1.Group("")
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.APIKeys))
	}
	protected.Use(middleware.RateLimit(cfg.RateLimit))
	protected.Use(middleware.BodyLimit(cfg.Extract.MaxBodyBytes))

	protected.POST("/routing", handler.Routing(cc))
	protected.POST("/trip/summary", handler.TripSummary())

	return r
}
