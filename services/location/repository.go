package location

import (
	"context"
	"time"

	"github.com/adiwira/tebengan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/adiwira/tebengan/services/location LocationRepo

// LocationRepo defines the interface for location data access
type LocationRepo interface {
	// UpsertRideLocation writes the publishing role's half of the ride's
	// location record and returns the merged record.
	UpsertRideLocation(ctx context.Context, rideID string, role models.Role, pos models.Position, at time.Time) (*models.LocationUpdateRecord, error)

	// GetRideLocation returns the latest record for a ride, or nil if none
	GetRideLocation(ctx context.Context, rideID string) (*models.LocationUpdateRecord, error)

	// UpdateDriverGeo refreshes the driver's entry in the live geo set
	UpdateDriverGeo(ctx context.Context, driverID string, pos models.Position) error

	// StoreLocationHistory appends one history row
	StoreLocationHistory(ctx context.Context, entry *models.LocationHistoryEntry) error

	// GetLocationHistory retrieves history rows for a user within a time range
	GetLocationHistory(ctx context.Context, userID string, start, end time.Time) ([]*models.LocationHistoryEntry, error)
}
