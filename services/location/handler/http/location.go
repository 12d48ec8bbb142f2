package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adiwira/tebengan/internal/pkg/logger"
	"github.com/adiwira/tebengan/internal/pkg/models"
	"github.com/adiwira/tebengan/internal/utils"
	"github.com/adiwira/tebengan/services/location"
	"github.com/adiwira/tebengan/services/location/usecase"
)

// LocationHandler handles HTTP requests for location operations
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// PublishLocation accepts a position publish for a ride
func (h *LocationHandler) PublishLocation(c echo.Context) error {
	var req models.LocationPublishRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind publish request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	result, err := h.locationUC.PublishLocation(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to publish location",
			logger.String("ride_id", req.RideID),
			logger.String("user_type", req.UserType),
			logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location published", result)
}

// GetRideLocation returns the latest location record for a ride
func (h *LocationHandler) GetRideLocation(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return utils.BadRequestResponse(c, "ride id is required")
	}

	record, err := h.locationUC.GetRideLocation(c.Request().Context(), rideID)
	if err != nil {
		logger.Error("Failed to get ride location",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get ride location")
	}
	if record == nil {
		return utils.NotFoundResponse(c, "no location recorded for ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride location", record)
}

// GetLocationHistory returns a user's location history within a time range
func (h *LocationHandler) GetLocationHistory(c echo.Context) error {
	userID := c.Param("userID")
	if userID == "" {
		return utils.BadRequestResponse(c, "user id is required")
	}

	start, err := parseTimeParam(c.QueryParam("start"), time.Now().Add(-24*time.Hour))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid start time")
	}
	end, err := parseTimeParam(c.QueryParam("end"), time.Now())
	if err != nil {
		return utils.BadRequestResponse(c, "invalid end time")
	}

	entries, err := h.locationUC.GetLocationHistory(c.Request().Context(), userID, start, end)
	if err != nil {
		logger.Error("Failed to get location history",
			logger.String("user_id", userID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get location history")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location history", entries)
}

// GetMapCredential returns the map provider API key. The key never ships in
// client builds; this endpoint is its only path to a client.
func (h *LocationHandler) GetMapCredential(c echo.Context) error {
	key, err := h.locationUC.MapCredential()
	if err != nil {
		if errors.Is(err, usecase.ErrCredentialMissing) {
			return utils.ErrorResponseWithHint(c, http.StatusServiceUnavailable,
				"map provider credential is not configured",
				"set maps.provider_api_key in the service configuration")
		}
		return utils.InternalServerErrorResponse(c, "failed to load map credential")
	}

	return c.JSON(http.StatusOK, map[string]string{"map_provider_api_key": key})
}

func parseTimeParam(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	return models.ParseTime(value)
}
