// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	auditBackend "github.com/hidolabs/hido/internal/audit/backend"
	auditDomain "github.com/hidolabs/hido/internal/audit/domain"
	auditHTTP "github.com/hidolabs/hido/internal/audit/http"
	auditUseCase "github.com/hidolabs/hido/internal/audit/usecase"
	"github.com/hidolabs/hido/internal/config"
	"github.com/hidolabs/hido/internal/database"
	"github.com/hidolabs/hido/internal/http"
	identityHTTP "github.com/hidolabs/hido/internal/identity/http"
	identityService "github.com/hidolabs/hido/internal/identity/service"
	identityUseCase "github.com/hidolabs/hido/internal/identity/usecase"
	intentHTTP "github.com/hidolabs/hido/internal/intent/http"
	"github.com/hidolabs/hido/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services
	keyStore identityService.KeyStore

	// Backends
	auditBackend auditBackend.Backend

	// Use Cases
	didManager    identityUseCase.DIDManager
	ledgerUseCase auditUseCase.LedgerUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	keyStoreInit        sync.Once
	auditBackendInit    sync.Once
	didManagerInit      sync.Once
	ledgerUseCaseInit   sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access. Only
// required when the audit backend is a SQL variant.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := database.Connect(database.Config{
			Driver:             c.config.DBDriver,
			ConnectionString:   c.config.DBConnectionString,
			MaxOpenConnections: c.config.DBMaxOpenConnections,
			MaxIdleConnections: c.config.DBMaxIdleConnections,
			ConnMaxLifetime:    c.config.DBConnMaxLifetime,
		})
		if err != nil {
			c.initErrors["db"] = err
			return
		}
		c.db = db
	})
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// MetricsProvider returns the metrics provider instance.
// Returns nil without error when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics instance.
// Falls back to a no-op implementation when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}

		businessMetrics, err := metrics.NewBusinessMetrics(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
		)
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		c.businessMetrics = businessMetrics
	})
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// KeyStore returns the Ed25519 key store instance.
func (c *Container) KeyStore() identityService.KeyStore {
	c.keyStoreInit.Do(func() {
		c.keyStore = identityService.NewEd25519KeyStore()
	})
	return c.keyStore
}

// DIDManager returns the DID manager use case instance.
func (c *Container) DIDManager() (identityUseCase.DIDManager, error) {
	c.didManagerInit.Do(func() {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["didManager"] = err
			return
		}

		manager := identityUseCase.NewDIDManager(c.KeyStore())
		c.didManager = identityUseCase.NewDIDManagerWithMetrics(manager, businessMetrics)
	})
	if storedErr, exists := c.initErrors["didManager"]; exists {
		return nil, storedErr
	}
	return c.didManager, nil
}

// AuditBackend returns the configured audit backend instance.
func (c *Container) AuditBackend(ctx context.Context) (auditBackend.Backend, error) {
	c.auditBackendInit.Do(func() {
		backend, err := c.initAuditBackend(ctx)
		if err != nil {
			c.initErrors["auditBackend"] = err
			return
		}
		c.auditBackend = backend
	})
	if storedErr, exists := c.initErrors["auditBackend"]; exists {
		return nil, storedErr
	}
	return c.auditBackend, nil
}

// LedgerUseCase returns the audit ledger use case instance.
func (c *Container) LedgerUseCase(ctx context.Context) (auditUseCase.LedgerUseCase, error) {
	c.ledgerUseCaseInit.Do(func() {
		backend, err := c.AuditBackend(ctx)
		if err != nil {
			c.initErrors["ledgerUseCase"] = err
			return
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["ledgerUseCase"] = err
			return
		}

		useCase := auditUseCase.NewLedgerUseCase(backend)
		c.ledgerUseCase = auditUseCase.NewLedgerUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["ledgerUseCase"]; exists {
		return nil, storedErr
	}
	return c.ledgerUseCase, nil
}

// HTTPServer returns the API HTTP server instance.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer(ctx)
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics HTTP server instance.
// Returns nil without error when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		if provider == nil {
			return
		}

		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.auditBackend != nil {
		if err := c.auditBackend.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("audit backend close: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initAuditBackend builds the backend selected by AUDIT_BACKEND. SQL variants
// get a database pool; the mock and blockchain variants run without one.
func (c *Container) initAuditBackend(ctx context.Context) (auditBackend.Backend, error) {
	kind, err := auditDomain.ParseBackendType(c.config.AuditBackend)
	if err != nil {
		return nil, err
	}

	var db *sql.DB
	if kind == auditDomain.BackendPostgreSQL || kind == auditDomain.BackendMySQL {
		db, err = c.DB()
		if err != nil {
			return nil, err
		}
	}

	return auditBackend.New(ctx, auditBackend.Config{
		Kind:          c.config.AuditBackend,
		AnchorURL:     c.config.AnchorURL,
		AnchorTimeout: c.config.AnchorTimeout,
	}, db, c.Logger())
}

// initHTTPServer assembles the API server with all handlers wired.
func (c *Container) initHTTPServer(ctx context.Context) (*http.Server, error) {
	logger := c.Logger()

	didManager, err := c.DIDManager()
	if err != nil {
		return nil, err
	}

	ledgerUseCase, err := c.LedgerUseCase(ctx)
	if err != nil {
		return nil, err
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}

	return http.NewServer(
		c.config,
		logger,
		metricsProvider,
		identityHTTP.NewIdentityHandler(didManager, logger),
		intentHTTP.NewIntentHandler(logger),
		auditHTTP.NewAuditHandler(ledgerUseCase, logger),
	)
}
