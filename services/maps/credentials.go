package maps

import (
	"context"
	"fmt"
	"time"

	pkghttp "github.com/adiwira/tebengan/internal/pkg/http"
)

// HTTPCredentialSource fetches the map provider key from the location
// service's credential endpoint.
type HTTPCredentialSource struct {
	client *pkghttp.Client
}

// NewHTTPCredentialSource creates a credential source against the location
// service.
func NewHTTPCredentialSource(serviceURL, token string, timeout time.Duration) *HTTPCredentialSource {
	client := pkghttp.NewClient(serviceURL, timeout)
	client.SetHeader("Authorization", "Bearer "+token)
	return &HTTPCredentialSource{client: client}
}

// MapCredential returns the provider API key
func (s *HTTPCredentialSource) MapCredential(ctx context.Context) (string, error) {
	var resp struct {
		MapProviderAPIKey string `json:"map_provider_api_key"`
	}
	if err := s.client.Get(ctx, "/v1/maps/credential", &resp); err != nil {
		return "", fmt.Errorf("credential request failed: %w", err)
	}
	if resp.MapProviderAPIKey == "" {
		return "", ErrCredentialMissing
	}
	return resp.MapProviderAPIKey, nil
}
