package location

import (
	"context"

	"github.com/adiwira/tebengan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/adiwira/tebengan/services/location LocationGW

// LocationGW defines the interface for location fan-out operations
type LocationGW interface {
	// BroadcastRecord publishes the merged record on the ride's realtime channel
	BroadcastRecord(ctx context.Context, record *models.LocationUpdateRecord) error

	// PublishLocationEvent publishes a location event for downstream consumers
	PublishLocationEvent(ctx context.Context, event models.LocationEvent) error
}
