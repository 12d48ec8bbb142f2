package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Checker reports whether a dependency is reachable
type Checker func(ctx context.Context) error

// Handler serves health endpoints with per-dependency checks
type Handler struct {
	serviceName string
	version     string
	checkers    map[string]Checker
}

// NewHandler creates a health handler
func NewHandler(serviceName, version string) *Handler {
	return &Handler{
		serviceName: serviceName,
		version:     version,
		checkers:    make(map[string]Checker),
	}
}

// AddChecker registers a named dependency check
func (h *Handler) AddChecker(name string, checker Checker) {
	h.checkers[name] = checker
}

// RegisterRoutes registers health routes on the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
}

// Health runs all dependency checks and reports overall status
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(h.checkers))
	for name, check := range h.checkers {
		if err := check(ctx); err != nil {
			deps[name] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			deps[name] = "ok"
		}
	}

	return c.JSON(status, map[string]interface{}{
		"service":      h.serviceName,
		"version":      h.version,
		"healthy":      status == http.StatusOK,
		"dependencies": deps,
		"timestamp":    time.Now().UTC(),
	})
}
