package maps

import (
	"context"

	"github.com/adiwira/tebengan/internal/pkg/models"
)

// MarkerSlot names a marker rendering target. Slots are idempotency keys:
// one marker per slot, created on first use and repositioned afterwards.
type MarkerSlot string

const (
	SlotDriverMarker      MarkerSlot = "driver"
	SlotPassengerMarker   MarkerSlot = "passenger"
	SlotPickupMarker      MarkerSlot = "pickup"
	SlotDestinationMarker MarkerSlot = "destination"
	SlotSelectionMarker   MarkerSlot = "search-selection"
)

// RouteSlot names a route rendering target with its own resolution state
type RouteSlot string

const (
	// RouteSlotStatic is the pickup -> destination route
	RouteSlotStatic RouteSlot = "static"
	// RouteSlotDynamic is the live driver -> destination route
	RouteSlotDynamic RouteSlot = "dynamic"
)

// MarkerStyle selects the provider's rendering for a marker slot
type MarkerStyle string

const (
	StyleDriver      MarkerStyle = "driver"
	StylePassenger   MarkerStyle = "passenger"
	StylePickup      MarkerStyle = "pickup"
	StyleDestination MarkerStyle = "destination"
	StyleSelection   MarkerStyle = "selection"
)

// RouteStyle selects the provider's rendering for a drawn path
type RouteStyle string

const (
	RouteStyleDriving  RouteStyle = "driving"
	RouteStyleFallback RouteStyle = "fallback"
)

// RouteOptions constrain a routing request
type RouteOptions struct {
	AvoidHighways bool
}

// Surface is the opaque map view handle owned by the presentation layer.
// The engine only requires that one exists.
type Surface interface {
	ID() string
}

// Provider is the mapping service capability set. One concrete adapter per
// provider keeps the provider swappable behind this interface. All
// rendering mutations are immediately visible on the live surface.
type Provider interface {
	// Load bootstraps the provider library with the given credential.
	// Called at most once per engine initialization.
	Load(ctx context.Context, apiKey string) error

	// Marker operations, keyed by slot
	CreateMarker(ctx context.Context, slot MarkerSlot, pos models.Position, style MarkerStyle) error
	UpdateMarkerPosition(ctx context.Context, slot MarkerSlot, pos models.Position) error
	SetMarkerVisible(ctx context.Context, slot MarkerSlot, visible bool) error
	RemoveMarker(ctx context.Context, slot MarkerSlot) error

	// Route rendering, keyed by route slot
	DrawRoute(ctx context.Context, slot RouteSlot, path []models.Position, style RouteStyle) error
	ClearRoute(ctx context.Context, slot RouteSlot) error

	// Viewport
	FitBounds(ctx context.Context, positions []models.Position, padding int) error
	SetCenter(ctx context.Context, pos models.Position, zoom int) error

	// Web services
	Route(ctx context.Context, origin, dest models.Position, opts RouteOptions) ([]models.Position, error)
	ReverseGeocode(ctx context.Context, pos models.Position) (string, error)
	SearchPlace(ctx context.Context, query string) (models.Position, string, error)
}

// CredentialSource fetches the map provider key from the server. The key is
// never embedded client-side.
type CredentialSource interface {
	MapCredential(ctx context.Context) (string, error)
}
