// Package provider implements the maps.Provider capability set against an
// HTTP mapping service. Rendering operations mutate the adapter's surface
// binding immediately; routing, geocoding and place search go over the
// provider's web API behind a circuit breaker.
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/adiwira/tebengan/internal/pkg/circuitbreaker"
	pkghttp "github.com/adiwira/tebengan/internal/pkg/http"
	"github.com/adiwira/tebengan/internal/pkg/models"
	"github.com/adiwira/tebengan/services/maps"
)

// ErrNotLoaded is returned when an operation runs before Load
var ErrNotLoaded = errors.New("map provider is not loaded")

// ErrRequestDenied is returned when the routing service refuses the request
var ErrRequestDenied = errors.New("routing request denied")

type markerState struct {
	pos     models.Position
	style   maps.MarkerStyle
	visible bool
}

type routeState struct {
	path  []models.Position
	style maps.RouteStyle
}

// HTTPProvider is a concrete maps.Provider over a hosted mapping service
type HTTPProvider struct {
	baseURL string
	timeout time.Duration
	breaker *circuitbreaker.CircuitBreaker

	mu      sync.Mutex
	client  *pkghttp.Client
	markers map[maps.MarkerSlot]*markerState
	routes  map[maps.RouteSlot]*routeState
	center  models.Position
	zoom    int
}

// NewHTTPProvider creates an unloaded provider for the given service URL
func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		timeout: timeout,
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("map-provider")),
		markers: make(map[maps.MarkerSlot]*markerState),
		routes:  make(map[maps.RouteSlot]*routeState),
	}
}

// Load binds the provider to its credential. Web requests before Load fail
// with ErrNotLoaded.
func (p *HTTPProvider) Load(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		return errors.New("api key is required")
	}

	client := pkghttp.NewClient(p.baseURL, p.timeout)
	client.SetHeader("X-Api-Key", apiKey)

	// One probe request so a bad key or unreachable service fails the
	// bootstrap rather than the first user-visible operation
	var status struct {
		Status string `json:"status"`
	}
	if err := client.Get(ctx, "/v1/status", &status); err != nil {
		return fmt.Errorf("provider bootstrap failed: %w", err)
	}

	p.mu.Lock()
	p.client = client
	p.mu.Unlock()
	return nil
}

func (p *HTTPProvider) webClient() (*pkghttp.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client == nil {
		return nil, ErrNotLoaded
	}
	return p.client, nil
}

// CreateMarker places a new marker for the slot
func (p *HTTPProvider) CreateMarker(_ context.Context, slot maps.MarkerSlot, pos models.Position, style maps.MarkerStyle) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.markers[slot] = &markerState{pos: pos, style: style, visible: true}
	return nil
}

// UpdateMarkerPosition repositions an existing marker
func (p *HTTPProvider) UpdateMarkerPosition(_ context.Context, slot maps.MarkerSlot, pos models.Position) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	marker, ok := p.markers[slot]
	if !ok {
		return fmt.Errorf("no marker for slot %q", slot)
	}
	marker.pos = pos
	return nil
}

// SetMarkerVisible toggles a marker's visibility
func (p *HTTPProvider) SetMarkerVisible(_ context.Context, slot maps.MarkerSlot, visible bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	marker, ok := p.markers[slot]
	if !ok {
		return fmt.Errorf("no marker for slot %q", slot)
	}
	marker.visible = visible
	return nil
}

// RemoveMarker discards the slot's marker
func (p *HTTPProvider) RemoveMarker(_ context.Context, slot maps.MarkerSlot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.markers, slot)
	return nil
}

// DrawRoute renders a path for the route slot, replacing any prior path
func (p *HTTPProvider) DrawRoute(_ context.Context, slot maps.RouteSlot, path []models.Position, style maps.RouteStyle) error {
	if len(path) < 2 {
		return errors.New("a route needs at least two points")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.routes[slot] = &routeState{path: path, style: style}
	return nil
}

// ClearRoute removes the slot's rendered path
func (p *HTTPProvider) ClearRoute(_ context.Context, slot maps.RouteSlot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.routes, slot)
	return nil
}

// FitBounds fits the viewport to the given positions
func (p *HTTPProvider) FitBounds(_ context.Context, positions []models.Position, _ int) error {
	if len(positions) == 0 {
		return nil
	}
	var latSum, lngSum float64
	for _, pos := range positions {
		latSum += pos.Latitude
		lngSum += pos.Longitude
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.center = models.Position{
		Latitude:  latSum / float64(len(positions)),
		Longitude: lngSum / float64(len(positions)),
	}
	return nil
}

// SetCenter recenters the viewport
func (p *HTTPProvider) SetCenter(_ context.Context, pos models.Position, zoom int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.center = pos
	p.zoom = zoom
	return nil
}

type directionsResponse struct {
	Status string `json:"status"`
	Route  []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"route"`
}

// Route requests a driving path between origin and destination
func (p *HTTPProvider) Route(ctx context.Context, origin, dest models.Position, opts maps.RouteOptions) ([]models.Position, error) {
	client, err := p.webClient()
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("origin", fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude))
	query.Set("destination", fmt.Sprintf("%f,%f", dest.Latitude, dest.Longitude))
	query.Set("mode", "driving")
	if opts.AvoidHighways {
		query.Set("avoid", "highways")
	}

	var resp directionsResponse
	err = p.breaker.Execute(ctx, func(ctx context.Context) error {
		return client.Get(ctx, "/v1/directions?"+query.Encode(), &resp)
	})
	if err != nil {
		return nil, err
	}

	if resp.Status != "OK" {
		return nil, fmt.Errorf("%w: %s", ErrRequestDenied, resp.Status)
	}
	if len(resp.Route) < 2 {
		return nil, errors.New("routing service returned an empty route")
	}

	path := make([]models.Position, len(resp.Route))
	for i, point := range resp.Route {
		path[i] = models.Position{Latitude: point.Latitude, Longitude: point.Longitude}
	}
	return path, nil
}

// ReverseGeocode resolves a position to an address string
func (p *HTTPProvider) ReverseGeocode(ctx context.Context, pos models.Position) (string, error) {
	client, err := p.webClient()
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("latlng", fmt.Sprintf("%f,%f", pos.Latitude, pos.Longitude))

	var resp struct {
		Status  string `json:"status"`
		Address string `json:"address"`
	}
	err = p.breaker.Execute(ctx, func(ctx context.Context) error {
		return client.Get(ctx, "/v1/geocode?"+query.Encode(), &resp)
	})
	if err != nil {
		return "", err
	}
	if resp.Status != "OK" || resp.Address == "" {
		return "", fmt.Errorf("%w: %s", ErrRequestDenied, resp.Status)
	}
	return resp.Address, nil
}

// SearchPlace resolves a typed query to a position and address
func (p *HTTPProvider) SearchPlace(ctx context.Context, queryText string) (models.Position, string, error) {
	client, err := p.webClient()
	if err != nil {
		return models.Position{}, "", err
	}

	query := url.Values{}
	query.Set("query", queryText)

	var resp struct {
		Status  string  `json:"status"`
		Address string  `json:"address"`
		Lat     float64 `json:"latitude"`
		Lng     float64 `json:"longitude"`
	}
	err = p.breaker.Execute(ctx, func(ctx context.Context) error {
		return client.Get(ctx, "/v1/places?"+query.Encode(), &resp)
	})
	if err != nil {
		return models.Position{}, "", err
	}
	if resp.Status != "OK" {
		return models.Position{}, "", fmt.Errorf("%w: %s", ErrRequestDenied, resp.Status)
	}

	return models.Position{Latitude: resp.Lat, Longitude: resp.Lng}, resp.Address, nil
}
