package main

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"recycleit/internal/recycler"
	"recycleit/internal/types"

	"github.com/gin-gonic/gin"
)

var errPartialPoint = errors.New("latitude and longitude must be provided together")

// NearbyRequest is the optional JSON body for POST nearby lookups
type NearbyRequest struct {
	Latitude  *float64 `json:"latitude" example:"19.076"`
	Longitude *float64 `json:"longitude" example:"72.8777"`
	Lat       *float64 `json:"lat,omitempty"`
	Lon       *float64 `json:"lon,omitempty"`
}

// ErrorResponse is returned for every non-2xx response
type ErrorResponse struct {
	Error string `json:"error" example:"Internal Server Error"`
}

// handleGetNearby godoc
// @Summary Find nearby e-waste recyclers
// @Description Looks up recycling facilities around a point. Falls back to the configured default point when no coordinates are given.
// @Tags recyclers
// @Produce json
// @Param lat query number false "Latitude in decimal degrees (alias: latitude)" minimum(-90) maximum(90) example(19.076)
// @Param lon query number false "Longitude in decimal degrees (alias: longitude)" minimum(-180) maximum(180) example(72.8777)
// @Success 200 {array} types.Recycler
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/nearby [get]
func (app *App) handleGetNearby(c *gin.Context) {
	lat, err := queryFloat(c, "lat", "latitude")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid latitude: " + err.Error()})
		return
	}
	lon, err := queryFloat(c, "lon", "longitude")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid longitude: " + err.Error()})
		return
	}

	point, err := pointFrom(lat, lon)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	app.respondNearby(c, point, app.cfg.Discovery.NearbyRadius)
}

// handlePostNearby godoc
// @Summary Find nearby e-waste recyclers
// @Description Looks up recycling facilities around the point in the request body. An empty body uses the configured default point.
// @Tags recyclers
// @Accept json
// @Produce json
// @Param request body NearbyRequest false "Search point"
// @Success 200 {array} types.Recycler
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/recyclers/nearby [post]
// @Router /api/nearby [post]
func (app *App) handlePostNearby(c *gin.Context) {
	var req NearbyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	lat := firstNonNil(req.Latitude, req.Lat)
	lon := firstNonNil(req.Longitude, req.Lon)

	point, err := pointFrom(lat, lon)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	app.respondNearby(c, point, app.cfg.Discovery.RecyclersRadius)
}

func (app *App) respondNearby(c *gin.Context, point *types.Coords, radiusMeters int) {
	// Delegate to business layer
	recyclers, err := app.recyclerService.Discover(c.Request.Context(), point, radiusMeters)
	if err != nil {
		// Check if it's a validation error from business layer
		if errors.Is(err, types.ErrInvalidLatitude) || errors.Is(err, types.ErrInvalidLongitude) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		// Other errors are internal server errors
		app.logger.Error("failed to discover recyclers",
			"point", point,
			"radius_meters", radiusMeters,
			"upstream", errors.Is(err, recycler.ErrUpstream),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, recyclers)
}

// queryFloat reads the first non-empty query parameter among names.
func queryFloat(c *gin.Context, names ...string) (*float64, error) {
	for _, name := range names {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	return nil, nil
}

// pointFrom returns nil when both components are absent, so the service applies its fallback.
func pointFrom(lat, lon *float64) (*types.Coords, error) {
	switch {
	case lat == nil && lon == nil:
		return nil, nil
	case lat == nil || lon == nil:
		return nil, errPartialPoint
	}
	p := types.NewCoords(*lat, *lon)
	return &p, nil
}

func firstNonNil(vals ...*float64) *float64 {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
