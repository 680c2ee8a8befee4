package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"specialroom-backend/config"
	"specialroom-backend/internal/api"
	"specialroom-backend/internal/booking"
	"specialroom-backend/internal/db"
	"specialroom-backend/internal/flash"
	"specialroom-backend/internal/form"
	"specialroom-backend/internal/logging"
	"specialroom-backend/internal/model"
	"specialroom-backend/internal/store"
	"specialroom-backend/internal/web"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath, true)
	if err != nil {
		log.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}

	// Setup logger
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	logger.Info("configuration loaded", zap.String("path", configPath))

	gin.SetMode(cfg.Server.Mode)
	if err := form.Register(); err != nil {
		logger.Fatal("failed to register form validators", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The API always answers from the local store; pages may go through a
	// remote lookup API instead.
	appStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize store", zap.Error(err))
	}
	apiFetcher := booking.StoreFetcher{Store: appStore}

	var pageFetcher booking.Fetcher = apiFetcher
	if cfg.Lookup.BaseURL != "" {
		pageFetcher = booking.NewClient(cfg.Lookup.BaseURL, cfg.Lookup.Timeout)
		logger.Info("pages use remote lookup API", zap.String("base_url", cfg.Lookup.BaseURL))
	}

	site, err := web.New(web.Options{
		Fetcher:  pageFetcher,
		Flash:    flash.NewStore(cfg.UI.ToastTTL),
		Log:      logger,
		Location: cfg.UI.Location(),
	})
	if err != nil {
		logger.Fatal("failed to load pages", zap.Error(err))
	}

	// Initialize router
	router := api.NewRouter(api.RouterOptions{
		Fetcher: apiFetcher,
		Server:  cfg.Server,
		Log:     logger,
		Site:    site,
	})
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("HTTP server starting", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server ListenAndServe", zap.Error(err))
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Info("shutdown signal received, stopping server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server Shutdown", zap.Error(err))
		return
	}
	logger.Info("server gracefully stopped")
}

// openStore connects the configured database, or falls back to the built-in
// mock booking when no DSN is set.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Store, error) {
	if cfg.Database.DSN == "" {
		logger.Info("no database configured, serving mock bookings")
		return store.NewMemoryStore(model.MockBookings()...), nil
	}

	gormDB, err := db.Init(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("database initialized", zap.String("driver", cfg.Database.Driver))
	return store.NewGormStore(gormDB), nil
}
