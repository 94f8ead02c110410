package main

import (
	"context"
	"fmt"
	"log/slog"

	"recycleit/internal/cache"
	"recycleit/internal/config"
	"recycleit/internal/metrics"
	"recycleit/internal/recycler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const defaultFrontendURL = "http://localhost:5173"

// Pinger reports backing store connectivity for readiness checks
type Pinger interface {
	Ping(ctx context.Context) error
}

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	recyclerService recycler.Service
	cache           Pinger
	cfg             *config.Config
	closers         []func()
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	var (
		opts    []recycler.Option
		pinger  Pinger
		closers []func()
	)

	if cfg.Cache.Addr != "" {
		c, err := cache.NewValkey(cfg.Cache.Addr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to cache: %w", err)
		}
		opts = append(opts, recycler.WithCache(c, cfg.Cache.TTL))
		pinger = c
		closers = append(closers, c.Close)
		logger.Info("discovery cache enabled", "addr", cfg.Cache.Addr, "ttl", cfg.Cache.TTL)
	}

	app, err := newAppWithService(cfg, logger, recycler.NewRecyclerService(cfg, logger, opts...), pinger)
	if err != nil {
		for _, c := range closers {
			c()
		}
		return nil, err
	}
	app.closers = closers

	logger.Info("application initialized")

	return app, nil
}

// newAppWithService wires the router around an existing recycler service.
// This is useful for testing with mock services.
func newAppWithService(cfg *config.Config, logger *slog.Logger, svc recycler.Service, pinger Pinger) (*App, error) {
	// Set Gin mode from configuration
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	router := gin.New()

	// X-Forwarded-For is honored only from configured proxies
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(accessLog(logger))
	router.Use(metrics.Middleware())
	origin := cfg.Server.FrontendURL
	if origin == "" {
		origin = defaultFrontendURL
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	app := &App{
		router:          router,
		logger:          logger,
		recyclerService: svc,
		cache:           pinger,
		cfg:             cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

// Close releases external connections
func (app *App) Close() {
	for _, c := range app.closers {
		c()
	}
}
