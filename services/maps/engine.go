package maps

import (
	"context"
	"fmt"
	"sync"

	"github.com/adiwira/tebengan/internal/pkg/logger"
	"github.com/adiwira/tebengan/internal/pkg/models"
)

// Engine owns one map surface: provider bootstrap, viewport, markers and
// geocoding. Marker slots are mutated only through the engine so the
// create-vs-update idempotency holds.
type Engine struct {
	credentials CredentialSource
	provider    Provider

	mu      sync.Mutex
	surface Surface
	ready   bool
	loaded  bool
	markers map[MarkerSlot]bool
}

// NewEngine creates an engine over the given credential source and provider
func NewEngine(credentials CredentialSource, provider Provider) *Engine {
	return &Engine{
		credentials: credentials,
		provider:    provider,
		markers:     make(map[MarkerSlot]bool),
	}
}

// Initialize acquires the provider credential, bootstraps the provider and
// centers the viewport. Failures are fatal for the map view and surfaced to
// the caller for an explicit user-visible retry; the engine never retries
// on its own.
func (e *Engine) Initialize(ctx context.Context, surface Surface, center models.Position, zoom int) error {
	if surface == nil {
		return ErrContainerMissing
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.surface = surface

	if !e.loaded {
		key, err := e.credentials.MapCredential(ctx)
		if err != nil || key == "" {
			logger.Error("Map credential unavailable", logger.Err(err))
			return fmt.Errorf("%w: %v", ErrCredentialMissing, err)
		}

		if err := e.provider.Load(ctx, key); err != nil {
			logger.Error("Map provider load failed", logger.Err(err))
			return fmt.Errorf("%w: %v", ErrProviderLoad, err)
		}
		e.loaded = true
	}

	if err := e.provider.SetCenter(ctx, center, zoom); err != nil {
		return fmt.Errorf("%w: %v", ErrProviderLoad, err)
	}

	e.ready = true
	logger.Info("Map surface initialized", logger.String("surface", surface.ID()))
	return nil
}

// Ready reports whether the map surface is initialized
func (e *Engine) Ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ready
}

// SetCenter recenters the viewport
func (e *Engine) SetCenter(ctx context.Context, pos models.Position, zoom int) error {
	if err := e.requireReady(); err != nil {
		return err
	}
	return e.provider.SetCenter(ctx, pos, zoom)
}

// FitToPositions fits the viewport to contain the given positions
func (e *Engine) FitToPositions(ctx context.Context, positions []models.Position, padding int) error {
	if err := e.requireReady(); err != nil {
		return err
	}
	if len(positions) == 0 {
		return nil
	}
	return e.provider.FitBounds(ctx, positions, padding)
}

// CreateOrUpdateMarker creates the slot's marker on first call and
// repositions it on subsequent calls.
func (e *Engine) CreateOrUpdateMarker(ctx context.Context, slot MarkerSlot, pos models.Position, style MarkerStyle) error {
	if err := e.requireReady(); err != nil {
		return err
	}

	e.mu.Lock()
	exists := e.markers[slot]
	if !exists {
		e.markers[slot] = true
	}
	e.mu.Unlock()

	if exists {
		return e.provider.UpdateMarkerPosition(ctx, slot, pos)
	}
	return e.provider.CreateMarker(ctx, slot, pos, style)
}

// SetMarkerVisible toggles a marker without discarding it
func (e *Engine) SetMarkerVisible(ctx context.Context, slot MarkerSlot, visible bool) error {
	if err := e.requireReady(); err != nil {
		return err
	}

	e.mu.Lock()
	exists := e.markers[slot]
	e.mu.Unlock()
	if !exists {
		return nil
	}
	return e.provider.SetMarkerVisible(ctx, slot, visible)
}

// RemoveMarker removes the slot's marker; the slot may be created again
func (e *Engine) RemoveMarker(ctx context.Context, slot MarkerSlot) error {
	if err := e.requireReady(); err != nil {
		return err
	}

	e.mu.Lock()
	exists := e.markers[slot]
	delete(e.markers, slot)
	e.mu.Unlock()

	if !exists {
		return nil
	}
	return e.provider.RemoveMarker(ctx, slot)
}

// Geocode resolves a position to an address string
func (e *Engine) Geocode(ctx context.Context, pos models.Position) (string, error) {
	if err := e.requireReady(); err != nil {
		return "", err
	}

	address, err := e.provider.ReverseGeocode(ctx, pos)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeocodeFailed, err)
	}
	return address, nil
}

func (e *Engine) requireReady() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return ErrContainerMissing
	}
	return nil
}
