package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/adiwira/tebengan/internal/pkg/constants"
	"github.com/adiwira/tebengan/internal/pkg/database"
	"github.com/adiwira/tebengan/internal/pkg/models"
	"github.com/adiwira/tebengan/services/location"
)

// RideLocationTTL is how long the Redis copy of a ride's latest record
// survives without updates. History analysis reads Postgres, not this key.
const RideLocationTTL = 24 * time.Hour

type locationRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sqlx.DB, redisClient *database.RedisClient) location.LocationRepo {
	return &locationRepo{
		db:          db,
		redisClient: redisClient,
	}
}

// UpsertRideLocation writes one role's half of the ride's location record.
// The other role's half is preserved, so the returned record reflects both
// sides after the merge.
func (r *locationRepo) UpsertRideLocation(ctx context.Context, rideID string, role models.Role, pos models.Position, at time.Time) (*models.LocationUpdateRecord, error) {
	var query string
	if role == models.RoleDriver {
		query = `
			INSERT INTO ride_locations (ride_id, driver_lat, driver_lng, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (ride_id) DO UPDATE
			SET driver_lat = EXCLUDED.driver_lat,
			    driver_lng = EXCLUDED.driver_lng,
			    updated_at = EXCLUDED.updated_at
			RETURNING ride_id, driver_lat, driver_lng, passenger_lat, passenger_lng, updated_at`
	} else {
		query = `
			INSERT INTO ride_locations (ride_id, passenger_lat, passenger_lng, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (ride_id) DO UPDATE
			SET passenger_lat = EXCLUDED.passenger_lat,
			    passenger_lng = EXCLUDED.passenger_lng,
			    updated_at = EXCLUDED.updated_at
			RETURNING ride_id, driver_lat, driver_lng, passenger_lat, passenger_lng, updated_at`
	}

	record := &models.LocationUpdateRecord{}
	err := r.db.GetContext(ctx, record, query, rideID, pos.Latitude, pos.Longitude, at)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert ride location: %w", err)
	}

	// Mirror the merged record into Redis so the bootstrap read and the
	// realtime bridge never need Postgres.
	if err := r.cacheRecord(ctx, record); err != nil {
		return record, nil // Cache miss is tolerable, record is durable
	}

	return record, nil
}

func (r *locationRepo) cacheRecord(ctx context.Context, record *models.LocationUpdateRecord) error {
	key := fmt.Sprintf(constants.KeyRideLocation, record.RideID)

	fields := map[string]interface{}{
		constants.FieldUpdatedAt: record.UpdatedAt.Format(time.RFC3339Nano),
	}
	if record.DriverLat != nil && record.DriverLng != nil {
		fields[constants.FieldDriverLat] = *record.DriverLat
		fields[constants.FieldDriverLng] = *record.DriverLng
	}
	if record.PassengerLat != nil && record.PassengerLng != nil {
		fields[constants.FieldPassengerLat] = *record.PassengerLat
		fields[constants.FieldPassengerLng] = *record.PassengerLng
	}

	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return err
	}
	return r.redisClient.Expire(ctx, key, RideLocationTTL)
}

// GetRideLocation returns the latest record for a ride, or nil if none.
// The Redis mirror is tried first; Postgres serves misses and expiries.
func (r *locationRepo) GetRideLocation(ctx context.Context, rideID string) (*models.LocationUpdateRecord, error) {
	if record, ok := r.cachedRecord(ctx, rideID); ok {
		return record, nil
	}

	query := `
		SELECT ride_id, driver_lat, driver_lng, passenger_lat, passenger_lng, updated_at
		FROM ride_locations
		WHERE ride_id = $1`

	record := &models.LocationUpdateRecord{}
	err := r.db.GetContext(ctx, record, query, rideID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ride location: %w", err)
	}

	return record, nil
}

// cachedRecord reads the Redis mirror of a ride's record. A missing or
// partially written hash reports a miss.
func (r *locationRepo) cachedRecord(ctx context.Context, rideID string) (*models.LocationUpdateRecord, bool) {
	key := fmt.Sprintf(constants.KeyRideLocation, rideID)

	values, err := r.redisClient.HMGet(ctx, key,
		constants.FieldDriverLat, constants.FieldDriverLng,
		constants.FieldPassengerLat, constants.FieldPassengerLng,
		constants.FieldUpdatedAt)
	if err != nil || len(values) != 5 || values[4] == nil {
		return nil, false
	}

	updatedAt, err := time.Parse(time.RFC3339Nano, fmt.Sprint(values[4]))
	if err != nil {
		return nil, false
	}

	record := &models.LocationUpdateRecord{RideID: rideID, UpdatedAt: updatedAt}
	record.DriverLat, record.DriverLng = parseCoordPair(values[0], values[1])
	record.PassengerLat, record.PassengerLng = parseCoordPair(values[2], values[3])
	return record, true
}

func parseCoordPair(latVal, lngVal interface{}) (*float64, *float64) {
	if latVal == nil || lngVal == nil {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(fmt.Sprint(latVal), 64)
	if err != nil {
		return nil, nil
	}
	lng, err := strconv.ParseFloat(fmt.Sprint(lngVal), 64)
	if err != nil {
		return nil, nil
	}
	return &lat, &lng
}

// UpdateDriverGeo refreshes the driver's entry in the live geo set
func (r *locationRepo) UpdateDriverGeo(ctx context.Context, driverID string, pos models.Position) error {
	return r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, pos.Longitude, pos.Latitude, driverID)
}

// StoreLocationHistory appends one history row
func (r *locationRepo) StoreLocationHistory(ctx context.Context, entry *models.LocationHistoryEntry) error {
	query := `
		INSERT INTO location_history (user_id, ride_id, role, latitude, longitude, geohash, created_at)
		VALUES (:user_id, :ride_id, :role, :latitude, :longitude, :geohash, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("failed to store location history: %w", err)
	}
	return nil
}

// GetLocationHistory retrieves history rows for a user within a time range
func (r *locationRepo) GetLocationHistory(ctx context.Context, userID string, start, end time.Time) ([]*models.LocationHistoryEntry, error) {
	query := `
		SELECT user_id, ride_id, role, latitude, longitude, geohash, created_at
		FROM location_history
		WHERE user_id = $1 AND created_at BETWEEN $2 AND $3
		ORDER BY created_at ASC`

	entries := []*models.LocationHistoryEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, userID, start, end); err != nil {
		return nil, fmt.Errorf("failed to get location history: %w", err)
	}
	return entries, nil
}
