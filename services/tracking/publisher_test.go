package tracking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwira/tebengan/internal/pkg/models"
)

func TestHTTPPublisher_Publish(t *testing.T) {
	var got models.LocationPublishRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/locations", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{},
		})
	}))
	defer srv.Close()

	pub := NewHTTPPublisher(srv.URL, "test-token", "driver-123", 5*time.Second)
	pos := models.Position{Latitude: -6.175392, Longitude: 106.827153}

	err := pub.Publish(context.Background(), pos, "ride-456", models.RoleDriver)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "driver-123", got.UserID)
	assert.Equal(t, "ride-456", got.RideID)
	assert.Equal(t, "driver", got.UserType)
	assert.Equal(t, pos.Latitude, got.Latitude)
	assert.Equal(t, pos.Longitude, got.Longitude)
}

func TestHTTPPublisher_ThrottledIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"throttled": true},
		})
	}))
	defer srv.Close()

	pub := NewHTTPPublisher(srv.URL, "test-token", "driver-123", 5*time.Second)

	err := pub.Publish(context.Background(), models.Position{Latitude: -6.2, Longitude: 106.8}, "ride-456", models.RoleDriver)
	assert.NoError(t, err)
}

func TestHTTPPublisher_ServerErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "coordinates out of range",
		})
	}))
	defer srv.Close()

	pub := NewHTTPPublisher(srv.URL, "test-token", "driver-123", 5*time.Second)

	err := pub.Publish(context.Background(), models.Position{Latitude: 95, Longitude: 200}, "ride-456", models.RoleDriver)
	require.Error(t, err)

	var pubErr *PublishError
	assert.ErrorAs(t, err, &pubErr)
}

func TestHTTPPublisher_UnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	pub := NewHTTPPublisher(srv.URL, "test-token", "driver-123", time.Second)

	err := pub.Publish(context.Background(), models.Position{Latitude: -6.2, Longitude: 106.8}, "ride-456", models.RolePassenger)
	require.Error(t, err)

	var pubErr *PublishError
	assert.ErrorAs(t, err, &pubErr)
}
