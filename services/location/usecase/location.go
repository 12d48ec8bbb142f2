package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/adiwira/tebengan/internal/pkg/logger"
	"github.com/adiwira/tebengan/internal/pkg/models"
	"github.com/adiwira/tebengan/internal/utils"
	"github.com/adiwira/tebengan/services/location"
)

// ThrottleWindow is the minimum spacing between persisted publishes per
// (ride, role, user). Publishes inside the window are coalesced, not
// rejected. The client publish interval is 3s; the extra second of slack
// protects the store from other or faulty clients.
const ThrottleWindow = 2 * time.Second

// ErrCredentialMissing is returned when no map provider key is configured
var ErrCredentialMissing = errors.New("map provider credential is not configured")

// LocationUC implements the location.LocationUC interface
type LocationUC struct {
	repo location.LocationRepo
	gw   location.LocationGW
	cfg  *models.Config

	// throttle is process-wide state keyed ride:role:user. It is
	// non-durable and resets on restart, which is acceptable for
	// debouncing but gives no at-most-once guarantee.
	throttleMu sync.Mutex
	throttle   map[string]time.Time
	window     time.Duration
	now        func() time.Time
}

// NewLocationUC creates a new location use case
func NewLocationUC(repo location.LocationRepo, gw location.LocationGW, cfg *models.Config) *LocationUC {
	window := ThrottleWindow
	if cfg.Location.ThrottleWindowSeconds > 0 {
		window = time.Duration(cfg.Location.ThrottleWindowSeconds) * time.Second
	}

	return &LocationUC{
		repo:     repo,
		gw:       gw,
		cfg:      cfg,
		throttle: make(map[string]time.Time),
		window:   window,
		now:      time.Now,
	}
}

// PublishLocation validates, throttles and persists a position publish
func (uc *LocationUC) PublishLocation(ctx context.Context, req models.LocationPublishRequest) (models.LocationPublishResult, error) {
	role := models.Role(req.UserType)
	if !role.Valid() {
		return models.LocationPublishResult{}, fmt.Errorf("invalid user_type: %q", req.UserType)
	}
	if req.RideID == "" || req.UserID == "" {
		return models.LocationPublishResult{}, errors.New("ride_id and user_id are required")
	}

	pos := models.Position{Latitude: req.Latitude, Longitude: req.Longitude}
	if !utils.ValidatePosition(pos) {
		return models.LocationPublishResult{}, errors.New("coordinates out of range")
	}

	if uc.throttled(req.RideID, role, req.UserID) {
		return models.LocationPublishResult{Throttled: true}, nil
	}

	at := uc.now().UTC()
	record, err := uc.repo.UpsertRideLocation(ctx, req.RideID, role, pos, at)
	if err != nil {
		return models.LocationPublishResult{}, fmt.Errorf("failed to store location: %w", err)
	}

	if role == models.RoleDriver {
		if err := uc.repo.UpdateDriverGeo(ctx, req.UserID, pos); err != nil {
			logger.Warn("Failed to update driver geo set",
				logger.String("driver_id", req.UserID),
				logger.Err(err))
			// Geo set is advisory, the publish still succeeded
		}
	}

	if err := uc.gw.BroadcastRecord(ctx, record); err != nil {
		logger.Warn("Failed to broadcast location record",
			logger.String("ride_id", req.RideID),
			logger.Err(err))
	}

	event := models.LocationEvent{
		UserID:    req.UserID,
		RideID:    req.RideID,
		Role:      string(role),
		Position:  pos,
		Timestamp: at,
	}
	if err := uc.gw.PublishLocationEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish location event",
			logger.String("ride_id", req.RideID),
			logger.Err(err))
	}

	return models.LocationPublishResult{}, nil
}

// throttled records the attempt and reports whether it falls inside the
// coalescing window for its (ride, role, user) key.
func (uc *LocationUC) throttled(rideID string, role models.Role, userID string) bool {
	key := fmt.Sprintf("%s:%s:%s", rideID, role, userID)

	uc.throttleMu.Lock()
	defer uc.throttleMu.Unlock()

	now := uc.now()
	if last, ok := uc.throttle[key]; ok && now.Sub(last) < uc.window {
		return true
	}
	uc.throttle[key] = now
	return false
}

// GetRideLocation returns the latest location record for a ride
func (uc *LocationUC) GetRideLocation(ctx context.Context, rideID string) (*models.LocationUpdateRecord, error) {
	if rideID == "" {
		return nil, errors.New("ride_id is required")
	}
	return uc.repo.GetRideLocation(ctx, rideID)
}

// GetLocationHistory retrieves history rows for a user within a time range
func (uc *LocationUC) GetLocationHistory(ctx context.Context, userID string, start, end time.Time) ([]*models.LocationHistoryEntry, error) {
	if start.After(end) {
		return nil, errors.New("start time must be before end time")
	}
	return uc.repo.GetLocationHistory(ctx, userID, start, end)
}

// RecordHistory persists one history row from a location event
func (uc *LocationUC) RecordHistory(ctx context.Context, event models.LocationEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = models.Now()
	}
	entry := &models.LocationHistoryEntry{
		UserID:    event.UserID,
		RideID:    event.RideID,
		Role:      event.Role,
		Latitude:  event.Position.Latitude,
		Longitude: event.Position.Longitude,
		Geohash:   utils.EncodePosition(event.Position, utils.HistoryGeohashPrecision),
		CreatedAt: event.Timestamp,
	}
	return uc.repo.StoreLocationHistory(ctx, entry)
}

// MapCredential returns the configured map provider API key
func (uc *LocationUC) MapCredential() (string, error) {
	key := uc.cfg.Maps.ProviderAPIKey
	if key == "" {
		return "", ErrCredentialMissing
	}
	return key, nil
}
