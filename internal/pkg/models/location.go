package models

import "time"

// Position is an immutable coordinate pair
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationUpdateRecord is the per-ride record a publisher upserts and the
// counterpart role reads through the realtime channel. Driver and passenger
// halves are independently nullable: each side's first publish only fills
// its own half.
type LocationUpdateRecord struct {
	RideID       string    `json:"ride_id" db:"ride_id"`
	DriverLat    *float64  `json:"driver_latitude,omitempty" db:"driver_lat"`
	DriverLng    *float64  `json:"driver_longitude,omitempty" db:"driver_lng"`
	PassengerLat *float64  `json:"passenger_latitude,omitempty" db:"passenger_lat"`
	PassengerLng *float64  `json:"passenger_longitude,omitempty" db:"passenger_lng"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// DriverPosition returns the driver half of the record, if present
func (r *LocationUpdateRecord) DriverPosition() (Position, bool) {
	if r.DriverLat == nil || r.DriverLng == nil {
		return Position{}, false
	}
	return Position{Latitude: *r.DriverLat, Longitude: *r.DriverLng}, true
}

// PassengerPosition returns the passenger half of the record, if present
func (r *LocationUpdateRecord) PassengerPosition() (Position, bool) {
	if r.PassengerLat == nil || r.PassengerLng == nil {
		return Position{}, false
	}
	return Position{Latitude: *r.PassengerLat, Longitude: *r.PassengerLng}, true
}

// LocationPublishRequest is the body of POST /v1/locations
type LocationPublishRequest struct {
	UserID    string  `json:"user_id"`
	RideID    string  `json:"ride_id"`
	UserType  string  `json:"user_type"` // driver or passenger
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationPublishResult reports the outcome of a publish. A throttled
// publish is still a success: the position was coalesced, not rejected.
type LocationPublishResult struct {
	Throttled bool `json:"throttled,omitempty"`
}

// LocationEvent is the message published to NSQ on every accepted publish
type LocationEvent struct {
	UserID    string    `json:"user_id"`
	RideID    string    `json:"ride_id"`
	Role      string    `json:"role"`
	Position  Position  `json:"position"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationHistoryEntry is a persisted history row
type LocationHistoryEntry struct {
	UserID    string    `json:"user_id" db:"user_id"`
	RideID    string    `json:"ride_id" db:"ride_id"`
	Role      string    `json:"role" db:"role"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Geohash   string    `json:"geohash" db:"geohash"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
