package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"recycleit/internal/metrics"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	app.router.GET("/", app.handleWelcome)

	// Health check endpoints
	app.router.GET("/ping", app.handlePing)
	app.router.GET("/ready", app.handleReady)
	app.router.GET("/metrics", metrics.Handler())

	api := app.router.Group("/api")
	api.Use(rateLimit(app.cfg.RateLimit.RequestsPerMinute, app.cfg.RateLimit.Burst))
	{
		// Recycler endpoints
		api.GET("/nearby", app.handleGetNearby)
		api.POST("/nearby", app.handlePostNearby)
		api.POST("/recyclers/nearby", app.handlePostNearby)
	}

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
