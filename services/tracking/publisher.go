package tracking

import (
	"context"
	"fmt"
	"time"

	pkghttp "github.com/adiwira/tebengan/internal/pkg/http"
	"github.com/adiwira/tebengan/internal/pkg/models"
)

// Publisher pushes a position to the remote store keyed by (ride, role)
type Publisher interface {
	Publish(ctx context.Context, pos models.Position, rideID string, role models.Role) error
}

// HTTPPublisher publishes positions to the location service
type HTTPPublisher struct {
	client *pkghttp.Client
	userID string
}

// NewHTTPPublisher creates a publisher for the given user against the
// location service. The token is sent as a bearer credential.
func NewHTTPPublisher(serviceURL, token, userID string, timeout time.Duration) *HTTPPublisher {
	client := pkghttp.NewClient(serviceURL, timeout)
	client.SetHeader("Authorization", "Bearer "+token)

	return &HTTPPublisher{
		client: client,
		userID: userID,
	}
}

type publishEnvelope struct {
	Success bool                         `json:"success"`
	Data    models.LocationPublishResult `json:"data"`
	Error   string                       `json:"error"`
}

// Publish sends the position to the location service. A throttled response
// is a success: the server coalesced the update, nothing surfaces.
func (p *HTTPPublisher) Publish(ctx context.Context, pos models.Position, rideID string, role models.Role) error {
	req := models.LocationPublishRequest{
		UserID:    p.userID,
		RideID:    rideID,
		UserType:  string(role),
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
	}

	var resp publishEnvelope
	if err := p.client.Post(ctx, "/v1/locations", req, &resp); err != nil {
		return &PublishError{Cause: err}
	}

	if !resp.Success {
		return &PublishError{Cause: fmt.Errorf("server rejected publish: %s", resp.Error)}
	}

	return nil
}
