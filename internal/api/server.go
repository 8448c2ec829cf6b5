package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/match-edge/internal/analysis"
	"github.com/yourusername/match-edge/internal/config"
	"github.com/yourusername/match-edge/internal/metrics"
)

// Server wraps the echo HTTP server with its lifecycle.
type Server struct {
	echo   *echo.Echo
	cfg    *config.Config
	logger *logrus.Logger
}

// NewServer builds the HTTP server: routes, rate limiting, response cache,
// and the metrics endpoint when enabled.
func NewServer(cfg *config.Config, analyzer *analysis.Analyzer, logger *logrus.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(rateLimitMiddleware(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst))

	var responseCache *ResponseCache
	if cfg.Server.CacheTTLSeconds > 0 {
		responseCache = NewResponseCache(time.Duration(cfg.Server.CacheTTLSeconds) * time.Second)
	}

	handler := NewAnalysisHandler(analyzer, cfg, responseCache, logger)
	handler.RegisterRoutes(e)
	e.GET("/healthz", Health)

	if cfg.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}

	return &Server{echo: e, cfg: cfg, logger: logger}
}

// Start runs the server until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.logger.WithField("addr", addr).Info("Starting HTTP server")

	s.echo.Server.ReadTimeout = time.Duration(s.cfg.Server.ReadTimeoutSecs) * time.Second
	s.echo.Server.WriteTimeout = time.Duration(s.cfg.Server.WriteTimeoutSecs) * time.Second

	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// rateLimitMiddleware rejects requests above the configured rate with 429.
func rateLimitMiddleware(limit rate.Limit, burst int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(limit, burst)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
