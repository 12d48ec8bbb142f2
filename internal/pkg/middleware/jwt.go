package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adiwira/tebengan/internal/pkg/jwt"
	"github.com/adiwira/tebengan/internal/pkg/logger"
	"github.com/adiwira/tebengan/internal/pkg/models"
	"github.com/adiwira/tebengan/internal/utils"
)

// Context keys for authenticated request data
const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "role"
)

// RequireJWT validates the bearer token and stores user id and role on the
// echo context.
func RequireJWT(cfg models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwt.ValidateToken(parts[1], cfg.Secret)
			if err != nil {
				logger.Warn("Token validation failed", logger.Err(err))
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyRole, claims.Role)

			return next(c)
		}
	}
}
