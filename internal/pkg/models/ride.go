package models

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies which half of a location record a party publishes
type Role string

const (
	RoleDriver    Role = "driver"
	RolePassenger Role = "passenger"
)

// Valid reports whether the role is one of the two known roles
func (r Role) Valid() bool {
	return r == RoleDriver || r == RolePassenger
}

// Counterpart returns the opposite role
func (r Role) Counterpart() Role {
	if r == RoleDriver {
		return RolePassenger
	}
	return RoleDriver
}

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusPending    RideStatus = "pending"
	RideStatusAccepted   RideStatus = "accepted"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusCancelled  RideStatus = "cancelled"
)

// IsActive reports whether the ride is in a trackable status
func (s RideStatus) IsActive() bool {
	switch s {
	case RideStatusPending, RideStatusAccepted, RideStatusInProgress:
		return true
	}
	return false
}

// IsTerminal reports whether the status is final and immutable
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// Ride is an immutable snapshot of a ride owned by the ride service
type Ride struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	PassengerID        uuid.UUID  `json:"passenger_id" db:"passenger_id"`
	DriverID           *uuid.UUID `json:"driver_id,omitempty" db:"driver_id"`
	Status             RideStatus `json:"status" db:"status"`
	PickupPosition     Position   `json:"pickup_position"`
	DestinationPos     Position   `json:"destination_position"`
	PickupAddress      string     `json:"pickup_address" db:"pickup_address"`
	DestinationAddress string     `json:"destination_address" db:"destination_address"`
	EstimatedPrice     float64    `json:"estimated_price" db:"estimated_price"`
	FinalPrice         *float64   `json:"final_price,omitempty" db:"final_price"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	StartedAt          *time.Time `json:"started_at,omitempty" db:"started_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`
}

// RideStatusTransition is a compare-and-set status change request
type RideStatusTransition struct {
	From RideStatus `json:"from"`
	To   RideStatus `json:"to"`
}
