// Package http provides the HTTP server and route wiring for the API.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	auditHTTP "github.com/hidolabs/hido/internal/audit/http"
	"github.com/hidolabs/hido/internal/config"
	identityHTTP "github.com/hidolabs/hido/internal/identity/http"
	intentHTTP "github.com/hidolabs/hido/internal/intent/http"
	"github.com/hidolabs/hido/internal/metrics"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new API server with all routes and middleware wired.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
	identityHandler *identityHTTP.IdentityHandler,
	intentHandler *intentHTTP.IntentHandler,
	auditHandler *auditHTTP.AuditHandler,
) (*Server, error) {
	gin.SetMode(cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsEnabled && metricsProvider != nil {
		metricsMiddleware, err := metrics.HTTPMetricsMiddleware(
			metricsProvider.MeterProvider(),
			cfg.MetricsNamespace,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics middleware: %w", err)
		}
		router.Use(metricsMiddleware)
	}

	if cfg.RateLimitEnabled {
		router.Use(RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, logger))
	}

	router.GET("/health", healthHandler)
	router.GET("/ready", readinessHandler)

	v1 := router.Group("/v1")
	{
		v1.POST("/identities", identityHandler.GenerateHandler)
		v1.GET("/identities", identityHandler.ListHandler)
		v1.GET("/identities/:did", identityHandler.ResolveHandler)
		v1.POST("/identities/:did/sign", identityHandler.SignHandler)
		v1.POST("/identities/:did/verify", identityHandler.VerifyHandler)

		v1.POST("/intents", intentHandler.BuildHandler)

		v1.POST("/audit/entries", auditHandler.RecordHandler)
		v1.GET("/audit/entries", auditHandler.ListHandler)
	}

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}, nil
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness to serve traffic.
func readinessHandler(c *gin.Context) {
	select {
	case <-c.Request.Context().Done():
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
