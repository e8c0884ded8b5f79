package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/thaitax/pit-calculator/internal/config"
)

// Server represents the HTTP server lifecycle.
type Server struct {
	echo   *echo.Echo
	logger logrus.FieldLogger
	cfg    config.HTTPConfig
}

// New constructs a Server around a router built by NewRouter.
func New(logger logrus.FieldLogger, cfg config.HTTPConfig, e *echo.Echo) *Server {
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout
	return &Server{echo: e, logger: logger, cfg: cfg}
}

// Start begins listening for HTTP traffic. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.WithField("addr", s.cfg.Addr()).Info("starting http server")
	err := s.echo.Start(s.cfg.Addr())
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully terminates all active connections.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
