// Package server is the HTTP surface of the service: health, version, and
// (in debug mode) a redacted view of the loaded configuration.
package server

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/beaconlabs/beacon/internal/config"
)

type Server struct {
	echo      *echo.Echo
	cfg       config.Config
	startTime time.Time
}

// New builds the server around an already-loaded configuration. The config
// is received by value; the server owns its copy for the process lifetime.
func New(cfg config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:      e,
		cfg:       cfg,
		startTime: time.Now(),
	}
	s.registerRoutes()
	return s
}

// Start blocks serving HTTP on the configured port.
func (s *Server) Start() error {
	return s.echo.Start(":" + strconv.Itoa(s.cfg.Port))
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
