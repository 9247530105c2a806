// Package server runs the keep-alive HTTP endpoint: liveness and readiness
// probes, build info, and Prometheus metrics. It carries no application
// logic.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	echo         *echo.Echo
	port         string
	healthChecks []HealthCheck
	startTime    time.Time
}

func New(port string, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		port:         port,
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) registerRoutes() {
	s.echo.GET("/", s.handleRoot)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.registerHealthRoutes()
}

// handleRoot serves the hosting platform's keep-alive ping.
func (s *Server) handleRoot(c echo.Context) error {
	return c.String(http.StatusOK, "Bot is running!")
}

func (s *Server) Start() error {
	slog.Info("Keep-alive server starting", "port", s.port)
	if err := s.echo.Start(":" + s.port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
