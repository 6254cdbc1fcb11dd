package api

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"gourmet-search/config"
	"gourmet-search/internal/mw"
	"gourmet-search/internal/pipeline"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(f pipeline.Fetcher, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(f, cfg)
	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	r.GET("/healthz", GetHealth)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// GET /api/shops
		api.GET("/shops", handler.GetShops)
	}

	return r
}
