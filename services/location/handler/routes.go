package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/adiwira/tebengan/internal/pkg/middleware"
	"github.com/adiwira/tebengan/internal/pkg/models"
	httphandler "github.com/adiwira/tebengan/services/location/handler/http"
)

// RegisterRoutes wires the location service routes onto the Echo instance
func RegisterRoutes(e *echo.Echo, cfg *models.Config, locationHandler *httphandler.LocationHandler, rideChannel *RideChannelHandler) {
	v1 := e.Group("/v1", middleware.RequireJWT(cfg.JWT))

	v1.POST("/locations", locationHandler.PublishLocation)
	v1.GET("/rides/:id/location", locationHandler.GetRideLocation)
	v1.GET("/locations/history/:userID", locationHandler.GetLocationHistory)
	v1.GET("/maps/credential", locationHandler.GetMapCredential)

	// Websocket does its own JWT handshake so browsers can connect without
	// the middleware's bearer requirement interfering with the upgrade.
	e.GET("/ws/rides/:id", rideChannel.Subscribe)

	// Service-to-service reads authenticate with an API key instead of a
	// user token.
	internal := e.Group("/internal/v1",
		middleware.ValidateAPIKey(cfg.Services.APIKeyHashes, "rides-service", "match-service"))
	internal.GET("/rides/:id/location", locationHandler.GetRideLocation)
	internal.GET("/locations/history/:userID", locationHandler.GetLocationHistory)
}
