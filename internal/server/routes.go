package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/beaconlabs/beacon/internal/platform/correlation"
)

func (s *Server) registerRoutes() {
	s.echo.Use(middleware.Recover())
	s.echo.Use(correlationMiddleware())

	s.echo.GET("/", s.handleRoot)
	s.echo.GET("/healthz", s.handleHealth)
	s.echo.GET("/version", s.handleVersion)

	// Registered only when DEBUG is set.
	if s.cfg.Debug {
		s.echo.GET("/debug/config", s.handleConfig)
	}
}

// correlationMiddleware assigns each request a correlation ID, stores it in
// the request context for log records, and echoes it back in a header.
func correlationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := correlation.NewID()
			ctx := correlation.WithID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Correlation-ID", id)
			return next(c)
		}
	}
}
