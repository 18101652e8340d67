package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/beaconlabs/beacon/internal/platform/version"
)

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"app":     s.cfg.Static.DisplayName,
		"slug":    s.cfg.Static.Slug,
		"bundle":  s.cfg.Static.BundleID,
		"variant": string(s.cfg.Variant),
	})
}

func (s *Server) handleHealth(c echo.Context) error {
	uptime := time.Since(s.startTime).Seconds()
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": uptime,
	})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, version.Get())
}

func (s *Server) handleConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, s.cfg.Redacted())
}
