package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"specialroom-backend/config"
	"specialroom-backend/internal/booking"
	"specialroom-backend/internal/mw"
	"specialroom-backend/internal/web"
)

// limiterIdle is how long a client's rate limiter survives without requests.
const limiterIdle = 10 * time.Minute

// RouterOptions are the dependencies of the router.
type RouterOptions struct {
	Fetcher booking.Fetcher
	Server  config.ServerConfig
	Log     *zap.Logger
	// Site serves the HTML pages. Nil serves the API only.
	Site *web.Site
}

// NewRouter creates and configures a new Gin router.
func NewRouter(opts RouterOptions) *gin.Engine {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestID(), mw.Logger(log))

	handler := NewHandler(opts.Fetcher)
	limiter := mw.NewIPRateLimiter(rate.Limit(opts.Server.RateLimitPerSec), opts.Server.RateLimitBurst, limiterIdle)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API group
	api := r.Group("/api")
	if origins := opts.Server.AllowedOrigins; len(origins) > 0 {
		api.Use(cors.New(corsConfig(origins)))
	}
	api.Use(mw.RateLimiter(limiter))
	{
		lookup := []gin.HandlerFunc{handler.GetBooking}
		if ttl := opts.Server.CacheTTL; ttl > 0 {
			caching := mw.Cache(cache.New(ttl, 2*ttl), ttl)
			lookup = append([]gin.HandlerFunc{caching}, lookup...)
		}

		// GET /api/booking/{id}
		api.GET("/booking/:id", lookup...)
	}

	if opts.Site != nil {
		opts.Site.Register(r)
	}
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Accept", "Content-Type", mw.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", mw.RequestIDHeader, mw.CacheHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
