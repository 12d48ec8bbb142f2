package maps

import "errors"

// Fatal map-view failures, surfaced to the UI as a retry prompt
var (
	// ErrCredentialMissing means the credential endpoint did not return a
	// usable map provider key
	ErrCredentialMissing = errors.New("map provider credential is missing")
	// ErrProviderLoad means the provider library could not be loaded
	ErrProviderLoad = errors.New("map provider failed to load")
	// ErrContainerMissing means no map surface was supplied
	ErrContainerMissing = errors.New("map surface is missing")
)

// Non-fatal failures
var (
	// ErrGeocodeFailed means an address lookup failed; selection proceeds
	// without an address string
	ErrGeocodeFailed = errors.New("geocoding failed")
	// ErrRouteUnavailable is returned only when every routing tier failed,
	// including the straight-line fallback
	ErrRouteUnavailable = errors.New("route unavailable")
)
