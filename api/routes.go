package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/xianplay-api/api/dramas"
	"github.com/killallgit/xianplay-api/api/health"
	"github.com/killallgit/xianplay-api/api/library"
	"github.com/killallgit/xianplay-api/api/middleware"
	"github.com/killallgit/xianplay-api/api/relay"
	"github.com/killallgit/xianplay-api/api/types"
	"github.com/killallgit/xianplay-api/api/version"
	_ "github.com/killallgit/xianplay-api/docs/swagger"
	"github.com/killallgit/xianplay-api/internal/services/cache"
	"github.com/killallgit/xianplay-api/internal/services/catalog"
	librarysvc "github.com/killallgit/xianplay-api/internal/services/library"
	relaysvc "github.com/killallgit/xianplay-api/internal/services/relay"
	"github.com/killallgit/xianplay-api/pkg/config"
)

// Rate limit groups, keyed as in rate_limiting.endpoints
const (
	relayLimitGroup   = "relay"
	catalogLimitGroup = "catalog"
	libraryLimitGroup = "library"
)

// RegisterRoutes registers all API routes. Dependencies left nil are built
// from cfg; the library is only served when a database is available.
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, cfg *config.Config, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if deps == nil {
		return fmt.Errorf("dependencies are nil")
	}

	initializeDependencies(deps, cfg)

	limit := func(group string) gin.HandlerFunc {
		rl, ok := cfg.RateLimiting.Endpoints[group]
		if !cfg.RateLimiting.Enabled || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, group, rl.RPS, rl.Burst)
	}

	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	engine.Group("/docs").GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	// GET /api/image-proxy
	relayGroup := engine.Group("/api")
	relayGroup.Use(limit(relayLimitGroup))
	relay.RegisterRoutes(relayGroup, deps)

	v1 := engine.Group("/api/v1")

	dramaGroup := v1.Group("/dramas")
	dramaGroup.Use(limit(catalogLimitGroup))
	dramaGroup.Use(middleware.ResponseCache(middleware.CacheConfig{
		Cache:      deps.ResponseCache,
		DefaultTTL: cfg.Cache.TTL,
		TTLByPath:  cfg.Cache.TTLByPath,
		Enabled:    deps.ResponseCache != nil,
	}))
	dramas.RegisterRoutes(dramaGroup, deps)

	if deps.LibraryEnabled() {
		libraryGroup := v1.Group("/library")
		libraryGroup.Use(limit(libraryLimitGroup))
		library.RegisterRoutes(libraryGroup, deps)
	} else {
		logrus.Warn("library routes disabled: no database configured")
	}

	return nil
}

// initializeDependencies fills in whatever the caller did not provide
func initializeDependencies(deps *types.Dependencies, cfg *config.Config) {
	if deps.Catalog == nil {
		deps.Catalog = catalog.NewClient(catalog.Config{
			BaseURL:   cfg.Catalog.BaseURL,
			UserAgent: cfg.Catalog.UserAgent,
			Timeout:   cfg.Catalog.Timeout,
		})
	}

	if deps.Relay == nil {
		gateway := relaysvc.NewGateway(relaysvc.Config{
			AllowedDomains: cfg.Relay.AllowedDomains,
			UserAgent:      cfg.Relay.UserAgent,
			Referer:        cfg.Relay.Referer,
			Accept:         cfg.Relay.Accept,
			Timeout:        cfg.Relay.Timeout,
			MaxBodyBytes:   cfg.Relay.MaxBodyBytes,
		})
		logrus.WithField("allowed_domains", gateway.Policy().Tokens()).Info("image relay allow-list loaded")
		deps.Relay = gateway
	}

	if deps.Library == nil && deps.DB != nil && deps.DB.DB != nil {
		deps.Library = librarysvc.NewService(librarysvc.NewRepository(deps.DB.DB))
	}

	if deps.ResponseCache == nil && cfg.Cache.Enabled {
		deps.ResponseCache = cache.NewMemoryCache(cfg.Cache.MaxSizeMB)
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
