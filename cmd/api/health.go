package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
}

// ReadyResponse reports dependency status
type ReadyResponse struct {
	Status string            `json:"status" example:"ready"`
	Checks map[string]string `json:"checks"`
}

// handleWelcome godoc
// @Summary API root
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (app *App) handleWelcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to E-waste Management API"})
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}

// handleReady godoc
// @Summary Readiness check
// @Description Check connectivity to the discovery cache
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /ready [get]
func (app *App) handleReady(c *gin.Context) {
	checks := map[string]string{}
	status, code := "ready", http.StatusOK

	if app.cache == nil {
		checks["cache"] = "not configured"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := app.cache.Ping(ctx); err != nil {
			checks["cache"] = "error: " + err.Error()
			status, code = "not ready", http.StatusServiceUnavailable
		} else {
			checks["cache"] = "ok"
		}
	}

	c.JSON(code, ReadyResponse{Status: status, Checks: checks})
}
