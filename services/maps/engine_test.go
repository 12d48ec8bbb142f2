package maps

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwira/tebengan/internal/pkg/models"
)

type fakeSurface struct{ id string }

func (s *fakeSurface) ID() string { return s.id }

type fakeCredentials struct {
	key   string
	err   error
	calls int
}

func (f *fakeCredentials) MapCredential(ctx context.Context) (string, error) {
	f.calls++
	return f.key, f.err
}

// routeCall records one web routing request
type routeCall struct {
	origin, dest models.Position
	opts         RouteOptions
}

// fakeProvider is a scriptable Provider that records every call
type fakeProvider struct {
	mu sync.Mutex

	loadErr   error
	loads     int
	loadedKey string

	createCalls []MarkerSlot
	updateCalls []MarkerSlot
	removeCalls []MarkerSlot
	markerPos   map[MarkerSlot]models.Position

	routeErr    error
	routeAltErr error
	routePath   []models.Position
	routeCalls  []routeCall

	drawErr    error
	drawCalls  []RouteSlot
	drawnPaths map[RouteSlot][]models.Position
	drawnStyle map[RouteSlot]RouteStyle
	clearCalls []RouteSlot

	geocodeAddr string
	geocodeErr  error

	searchPos  models.Position
	searchAddr string
	searchErr  error

	fitCalls int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		markerPos:  make(map[MarkerSlot]models.Position),
		drawnPaths: make(map[RouteSlot][]models.Position),
		drawnStyle: make(map[RouteSlot]RouteStyle),
	}
}

func (f *fakeProvider) Load(ctx context.Context, apiKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.loadErr != nil {
		return f.loadErr
	}
	f.loadedKey = apiKey
	return nil
}

func (f *fakeProvider) CreateMarker(ctx context.Context, slot MarkerSlot, pos models.Position, style MarkerStyle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls = append(f.createCalls, slot)
	f.markerPos[slot] = pos
	return nil
}

func (f *fakeProvider) UpdateMarkerPosition(ctx context.Context, slot MarkerSlot, pos models.Position) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls = append(f.updateCalls, slot)
	f.markerPos[slot] = pos
	return nil
}

func (f *fakeProvider) SetMarkerVisible(ctx context.Context, slot MarkerSlot, visible bool) error {
	return nil
}

func (f *fakeProvider) RemoveMarker(ctx context.Context, slot MarkerSlot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeCalls = append(f.removeCalls, slot)
	delete(f.markerPos, slot)
	return nil
}

func (f *fakeProvider) DrawRoute(ctx context.Context, slot RouteSlot, path []models.Position, style RouteStyle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.drawErr != nil {
		return f.drawErr
	}
	f.drawCalls = append(f.drawCalls, slot)
	f.drawnPaths[slot] = path
	f.drawnStyle[slot] = style
	return nil
}

func (f *fakeProvider) ClearRoute(ctx context.Context, slot RouteSlot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearCalls = append(f.clearCalls, slot)
	delete(f.drawnPaths, slot)
	return nil
}

func (f *fakeProvider) FitBounds(ctx context.Context, positions []models.Position, padding int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fitCalls++
	return nil
}

func (f *fakeProvider) SetCenter(ctx context.Context, pos models.Position, zoom int) error {
	return nil
}

func (f *fakeProvider) Route(ctx context.Context, origin, dest models.Position, opts RouteOptions) ([]models.Position, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routeCalls = append(f.routeCalls, routeCall{origin: origin, dest: dest, opts: opts})
	if opts.AvoidHighways {
		if f.routeAltErr != nil {
			return nil, f.routeAltErr
		}
	} else if f.routeErr != nil {
		return nil, f.routeErr
	}
	if f.routePath != nil {
		return f.routePath, nil
	}
	return []models.Position{origin, dest}, nil
}

func (f *fakeProvider) ReverseGeocode(ctx context.Context, pos models.Position) (string, error) {
	if f.geocodeErr != nil {
		return "", f.geocodeErr
	}
	return f.geocodeAddr, nil
}

func (f *fakeProvider) SearchPlace(ctx context.Context, query string) (models.Position, string, error) {
	if f.searchErr != nil {
		return models.Position{}, "", f.searchErr
	}
	return f.searchPos, f.searchAddr, nil
}

func (f *fakeProvider) webRouteCalls() []routeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]routeCall(nil), f.routeCalls...)
}

var testCenter = models.Position{Latitude: -6.2, Longitude: 106.816666}

func newReadyEngine(t *testing.T) (*Engine, *fakeProvider) {
	t.Helper()
	provider := newFakeProvider()
	creds := &fakeCredentials{key: "maps-key"}
	engine := NewEngine(creds, provider)
	require.NoError(t, engine.Initialize(context.Background(), &fakeSurface{id: "map-root"}, testCenter, 15))
	return engine, provider
}

func TestEngine_Initialize(t *testing.T) {
	provider := newFakeProvider()
	creds := &fakeCredentials{key: "maps-key"}
	engine := NewEngine(creds, provider)

	err := engine.Initialize(context.Background(), &fakeSurface{id: "map-root"}, testCenter, 15)
	require.NoError(t, err)

	assert.True(t, engine.Ready())
	assert.Equal(t, "maps-key", provider.loadedKey)
	assert.Equal(t, 1, provider.loads)

	// Re-initialize reuses the loaded provider
	err = engine.Initialize(context.Background(), &fakeSurface{id: "map-root"}, testCenter, 12)
	require.NoError(t, err)
	assert.Equal(t, 1, provider.loads)
	assert.Equal(t, 1, creds.calls)
}

func TestEngine_InitializeWithoutSurface(t *testing.T) {
	engine := NewEngine(&fakeCredentials{key: "maps-key"}, newFakeProvider())

	err := engine.Initialize(context.Background(), nil, testCenter, 15)
	assert.ErrorIs(t, err, ErrContainerMissing)
	assert.False(t, engine.Ready())
}

func TestEngine_InitializeCredentialFailure(t *testing.T) {
	tests := []struct {
		name  string
		creds *fakeCredentials
	}{
		{name: "fetch error", creds: &fakeCredentials{err: errors.New("service unavailable")}},
		{name: "empty key", creds: &fakeCredentials{key: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newFakeProvider()
			engine := NewEngine(tt.creds, provider)

			err := engine.Initialize(context.Background(), &fakeSurface{id: "map-root"}, testCenter, 15)
			assert.ErrorIs(t, err, ErrCredentialMissing)
			assert.False(t, engine.Ready())
			assert.Equal(t, 0, provider.loads)
		})
	}
}

func TestEngine_InitializeProviderLoadFailure(t *testing.T) {
	provider := newFakeProvider()
	provider.loadErr = errors.New("script blocked")
	engine := NewEngine(&fakeCredentials{key: "maps-key"}, provider)

	err := engine.Initialize(context.Background(), &fakeSurface{id: "map-root"}, testCenter, 15)
	assert.ErrorIs(t, err, ErrProviderLoad)
	assert.False(t, engine.Ready())

	// An explicit retry is allowed and loads again
	provider.loadErr = nil
	err = engine.Initialize(context.Background(), &fakeSurface{id: "map-root"}, testCenter, 15)
	assert.NoError(t, err)
	assert.True(t, engine.Ready())
}

func TestEngine_MarkerIdempotency(t *testing.T) {
	engine, provider := newReadyEngine(t)
	ctx := context.Background()

	first := models.Position{Latitude: -6.17, Longitude: 106.82}
	second := models.Position{Latitude: -6.18, Longitude: 106.83}

	require.NoError(t, engine.CreateOrUpdateMarker(ctx, SlotDriverMarker, first, StyleDriver))
	require.NoError(t, engine.CreateOrUpdateMarker(ctx, SlotDriverMarker, second, StyleDriver))
	require.NoError(t, engine.CreateOrUpdateMarker(ctx, SlotDriverMarker, first, StyleDriver))

	// One create, then repositions only
	assert.Equal(t, []MarkerSlot{SlotDriverMarker}, provider.createCalls)
	assert.Equal(t, []MarkerSlot{SlotDriverMarker, SlotDriverMarker}, provider.updateCalls)
	assert.Equal(t, first, provider.markerPos[SlotDriverMarker])
}

func TestEngine_MarkerSlotsAreIndependent(t *testing.T) {
	engine, provider := newReadyEngine(t)
	ctx := context.Background()

	pos := models.Position{Latitude: -6.17, Longitude: 106.82}
	require.NoError(t, engine.CreateOrUpdateMarker(ctx, SlotDriverMarker, pos, StyleDriver))
	require.NoError(t, engine.CreateOrUpdateMarker(ctx, SlotPassengerMarker, pos, StylePassenger))

	assert.Len(t, provider.createCalls, 2)
	assert.Empty(t, provider.updateCalls)
}

func TestEngine_RemoveMarkerAllowsRecreate(t *testing.T) {
	engine, provider := newReadyEngine(t)
	ctx := context.Background()

	pos := models.Position{Latitude: -6.17, Longitude: 106.82}
	require.NoError(t, engine.CreateOrUpdateMarker(ctx, SlotPickupMarker, pos, StylePickup))
	require.NoError(t, engine.RemoveMarker(ctx, SlotPickupMarker))

	// Removing an absent slot is a no-op
	require.NoError(t, engine.RemoveMarker(ctx, SlotPickupMarker))
	assert.Equal(t, []MarkerSlot{SlotPickupMarker}, provider.removeCalls)

	require.NoError(t, engine.CreateOrUpdateMarker(ctx, SlotPickupMarker, pos, StylePickup))
	assert.Equal(t, []MarkerSlot{SlotPickupMarker, SlotPickupMarker}, provider.createCalls)
}

func TestEngine_OperationsRequireReadySurface(t *testing.T) {
	engine := NewEngine(&fakeCredentials{key: "maps-key"}, newFakeProvider())
	ctx := context.Background()
	pos := models.Position{Latitude: -6.17, Longitude: 106.82}

	assert.ErrorIs(t, engine.CreateOrUpdateMarker(ctx, SlotDriverMarker, pos, StyleDriver), ErrContainerMissing)
	assert.ErrorIs(t, engine.SetCenter(ctx, pos, 15), ErrContainerMissing)
	_, err := engine.Geocode(ctx, pos)
	assert.ErrorIs(t, err, ErrContainerMissing)
}

func TestEngine_Geocode(t *testing.T) {
	engine, provider := newReadyEngine(t)
	provider.geocodeAddr = "Jl. Sudirman No. 1"

	address, err := engine.Geocode(context.Background(), testCenter)
	require.NoError(t, err)
	assert.Equal(t, "Jl. Sudirman No. 1", address)

	provider.geocodeErr = errors.New("quota exceeded")
	_, err = engine.Geocode(context.Background(), testCenter)
	assert.ErrorIs(t, err, ErrGeocodeFailed)
}
