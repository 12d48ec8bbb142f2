package middleware

import (
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/adiwira/tebengan/internal/utils"
)

// APIKeyHeader is the header carrying the service-to-service API key
const APIKeyHeader = "X-API-Key"

// ValidateAPIKey validates the API key for service-to-service calls.
// Keys are configured as bcrypt hashes so a leaked config does not leak
// usable credentials.
func ValidateAPIKey(keyHashes map[string]string, allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			validKey := false
			for _, service := range allowedServices {
				hash, ok := keyHashes[service]
				if !ok || hash == "" {
					continue
				}
				if bcrypt.CompareHashAndPassword([]byte(hash), []byte(apiKey)) == nil {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			return next(c)
		}
	}
}
