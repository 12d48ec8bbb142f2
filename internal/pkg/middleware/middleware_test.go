package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/adiwira/tebengan/internal/pkg/jwt"
	"github.com/adiwira/tebengan/internal/pkg/models"
)

var jwtCfg = models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "tebengan"}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireJWT(t *testing.T) {
	userID := uuid.New()
	token, _, err := jwt.GenerateToken(userID, models.RolePassenger, jwtCfg)
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{name: "valid token", authHeader: "Bearer " + token, expectedStatus: http.StatusOK},
		{name: "missing header", authHeader: "", expectedStatus: http.StatusUnauthorized},
		{name: "not bearer", authHeader: "Basic abc123", expectedStatus: http.StatusUnauthorized},
		{name: "bad token", authHeader: "Bearer garbage", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := RequireJWT(jwtCfg)(okHandler)(c)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, userID.String(), c.Get(ContextKeyUserID))
				assert.Equal(t, "passenger", c.Get(ContextKeyRole))
			}
		})
	}
}

func TestValidateAPIKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rides-key"), bcrypt.MinCost)
	require.NoError(t, err)

	keyHashes := map[string]string{"rides-service": string(hash)}

	tests := []struct {
		name           string
		apiKey         string
		allowed        []string
		expectedStatus int
	}{
		{name: "valid key", apiKey: "rides-key", allowed: []string{"rides-service"}, expectedStatus: http.StatusOK},
		{name: "missing key", apiKey: "", allowed: []string{"rides-service"}, expectedStatus: http.StatusUnauthorized},
		{name: "wrong key", apiKey: "other-key", allowed: []string{"rides-service"}, expectedStatus: http.StatusUnauthorized},
		{name: "service not allowed", apiKey: "rides-key", allowed: []string{"match-service"}, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.apiKey != "" {
				req.Header.Set(APIKeyHeader, tt.apiKey)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := ValidateAPIKey(keyHashes, tt.allowed...)(okHandler)(c)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
