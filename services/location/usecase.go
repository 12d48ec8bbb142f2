package location

import (
	"context"
	"time"

	"github.com/adiwira/tebengan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adiwira/tebengan/services/location LocationUC

// LocationUC defines the interface for location business logic
type LocationUC interface {
	// PublishLocation validates, throttles and persists a position publish,
	// then fans it out to the ride's realtime channel. A throttled publish
	// is reported as success with Throttled set.
	PublishLocation(ctx context.Context, req models.LocationPublishRequest) (models.LocationPublishResult, error)

	// GetRideLocation returns the latest location record for a ride
	GetRideLocation(ctx context.Context, rideID string) (*models.LocationUpdateRecord, error)

	// GetLocationHistory retrieves history rows for a user within a time range
	GetLocationHistory(ctx context.Context, userID string, start, end time.Time) ([]*models.LocationHistoryEntry, error)

	// RecordHistory persists one history row; fed by the NSQ consumer
	RecordHistory(ctx context.Context, event models.LocationEvent) error

	// MapCredential returns the map provider API key for clients
	MapCredential() (string, error)
}
