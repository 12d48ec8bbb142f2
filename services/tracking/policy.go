package tracking

import "github.com/adiwira/tebengan/internal/pkg/models"

// RouteKind names the active route slot for a ride state
type RouteKind string

const (
	// RouteNone means no route is drawn
	RouteNone RouteKind = "none"
	// RouteStatic is the pickup -> destination route
	RouteStatic RouteKind = "static"
	// RouteDynamic is the live driver -> destination route
	RouteDynamic RouteKind = "dynamic"
)

// Visibility is the decision of what a role sees for a ride status.
// ShowDriverMarker means the marker is shown once a driver position
// exists; availability of the position itself is the caller's data.
type Visibility struct {
	ShowPassengerMarker bool
	ShowDriverMarker    bool
	ActiveRoute         RouteKind
}

// VisibilityFor is the single source of truth mapping (role, status) to
// what markers and routes are visible. Pure and deterministic; UI layers
// must not make their own visibility decisions.
func VisibilityFor(role models.Role, status models.RideStatus) Visibility {
	if status.IsTerminal() {
		// Session is torn down; nothing is shown
		return Visibility{ActiveRoute: RouteNone}
	}

	switch role {
	case models.RoleDriver:
		switch status {
		case models.RideStatusPending, models.RideStatusAccepted:
			return Visibility{
				ShowPassengerMarker: true,
				ShowDriverMarker:    true,
				ActiveRoute:         RouteStatic,
			}
		case models.RideStatusInProgress:
			return Visibility{
				ShowDriverMarker: true,
				ActiveRoute:      RouteDynamic,
			}
		}

	case models.RolePassenger:
		switch status {
		case models.RideStatusPending:
			// No driver assigned yet; the map shows pickup/destination only
			return Visibility{ActiveRoute: RouteNone}
		case models.RideStatusAccepted:
			return Visibility{
				ShowDriverMarker: true,
				ActiveRoute:      RouteStatic,
			}
		case models.RideStatusInProgress:
			return Visibility{
				ShowDriverMarker: true,
				ActiveRoute:      RouteDynamic,
			}
		}
	}

	return Visibility{ActiveRoute: RouteNone}
}
