// Package rides is the thin client for the ride service. Ride snapshots
// are owned remotely; this client only reads them and requests status
// transitions.
package rides

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	pkghttp "github.com/adiwira/tebengan/internal/pkg/http"
	"github.com/adiwira/tebengan/internal/pkg/models"
)

// ErrStaleStatus is returned when the expected prior status no longer
// matches; the caller should refresh the snapshot and re-decide.
var ErrStaleStatus = errors.New("ride status changed concurrently")

// ErrRideNotFound is returned for an unknown ride id
var ErrRideNotFound = errors.New("ride not found")

// Client talks to the ride service
type Client struct {
	http *pkghttp.Client
}

// NewClient creates a ride service client
func NewClient(serviceURL, token string, timeout time.Duration) *Client {
	client := pkghttp.NewClient(serviceURL, timeout)
	client.SetHeader("Authorization", "Bearer "+token)
	return &Client{http: client}
}

type rideEnvelope struct {
	Success bool        `json:"success"`
	Data    models.Ride `json:"data"`
	Error   string      `json:"error"`
}

// GetRide returns the current snapshot for a ride
func (c *Client) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	var resp rideEnvelope
	err := c.http.Get(ctx, "/v1/rides/"+rideID, &resp)
	if err != nil {
		var statusErr *pkghttp.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return &resp.Data, nil
}

// UpdateRideStatus requests a compare-and-set status transition and returns
// the updated snapshot.
func (c *Client) UpdateRideStatus(ctx context.Context, rideID string, transition models.RideStatusTransition) (*models.Ride, error) {
	var resp rideEnvelope
	err := c.http.Patch(ctx, "/v1/rides/"+rideID+"/status", transition, &resp)
	if err != nil {
		var statusErr *pkghttp.StatusError
		if errors.As(err, &statusErr) {
			switch statusErr.StatusCode {
			case http.StatusConflict:
				return nil, ErrStaleStatus
			case http.StatusNotFound:
				return nil, ErrRideNotFound
			}
		}
		return nil, fmt.Errorf("failed to update ride status: %w", err)
	}
	return &resp.Data, nil
}
