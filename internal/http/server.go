// Package http provides the API and metrics servers.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/infiniteloop/camaraclient/internal/auth/http"
	"github.com/infiniteloop/camaraclient/internal/config"
	cryptoHTTP "github.com/infiniteloop/camaraclient/internal/crypto/http"
	"github.com/infiniteloop/camaraclient/internal/metrics"
)

// Server is the API server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
	ready  atomic.Bool
}

// NewServer creates a server bound to host:port. It reports ready until Shutdown is called.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	s := &Server{
		logger: logger,
		server: &http.Server{
			Addr:              net.JoinHostPort(host, fmt.Sprint(port)),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
	s.ready.Store(true)
	return s
}

// SetupRouter registers middleware and routes. Rate limiter bookkeeping stops when ctx is done.
// tokenHandler may be nil when no operator is configured; the token route is then absent.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	cryptoHandler *cryptoHTTP.CryptoHandler,
	tokenHandler *authHTTP.TokenHandler,
	metricsProvider *metrics.Provider,
) error {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(newRequestIDMiddleware())
	router.Use(CustomLoggerMiddleware(s.logger))

	if cors := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); cors != nil {
		router.Use(cors)
	}

	if metricsProvider != nil {
		httpMetrics, err := metrics.NewHTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsProvider.Namespace())
		if err != nil {
			return err
		}
		router.Use(httpMetrics)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	v1.POST("/crypto/encrypt", cryptoHandler.EncryptHandler)
	v1.POST("/crypto/decrypt", cryptoHandler.DecryptHandler)
	if tokenHandler != nil {
		v1.POST("/operator/token", tokenHandler.IssueTokenHandler)
	}

	s.router = router
	s.server.Handler = router
	return nil
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start listens on the configured address and serves until Shutdown.
func (s *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ln)
}

// Serve serves on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	if s.server.Handler == nil {
		s.server.Handler = s.router
	}
	s.logger.Info("starting http server", slog.String("addr", ln.Addr().String()))

	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown marks the server not ready and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.ready.Store(false)
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	if !s.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
