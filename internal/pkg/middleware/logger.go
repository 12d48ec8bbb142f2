package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/adiwira/tebengan/internal/pkg/logger"
)

// RequestLogger logs every request with latency and status
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
				c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.GetGlobalLogger().LogHTTPRequest(
				c.Request().Method,
				c.Request().URL.Path,
				c.RealIP(),
				requestID,
				c.Response().Status,
				time.Since(start),
				err,
			)

			return err
		}
	}
}
