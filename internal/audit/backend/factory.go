package backend

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	auditDomain "github.com/hidolabs/hido/internal/audit/domain"
	apperrors "github.com/hidolabs/hido/internal/errors"
)

// Config selects and parameterizes a backend variant.
type Config struct {
	// Kind is the backend variant tag ("mock", "blockchain", "postgresql",
	// "mysql").
	Kind string
	// AnchorURL is the anchoring service base URL (blockchain only).
	AnchorURL string
	// AnchorTimeout bounds anchoring calls (blockchain only).
	AnchorTimeout time.Duration
}

// New creates the audit backend selected by the configuration.
//
// Construction failures are isolated per call: a failed blockchain backend
// (ErrBackendUnavailable) leaves the caller free to create a mock backend
// afterwards. SQL variants require a non-nil database pool.
func New(ctx context.Context, cfg Config, db *sql.DB, logger *slog.Logger) (Backend, error) {
	kind, err := auditDomain.ParseBackendType(cfg.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case auditDomain.BackendMock:
		return NewMemoryBackend(), nil

	case auditDomain.BackendBlockchain:
		anchor := NewAnchorClient(cfg.AnchorURL, cfg.AnchorTimeout)
		return NewBlockchainBackend(ctx, anchor, logger)

	case auditDomain.BackendPostgreSQL:
		if db == nil {
			return nil, apperrors.Wrap(apperrors.ErrBackendUnavailable, "postgresql backend requires a database")
		}
		return NewPostgreSQLBackend(db), nil

	case auditDomain.BackendMySQL:
		if db == nil {
			return nil, apperrors.Wrap(apperrors.ErrBackendUnavailable, "mysql backend requires a database")
		}
		return NewMySQLBackend(db), nil

	default:
		return nil, auditDomain.ErrUnknownBackend
	}
}
