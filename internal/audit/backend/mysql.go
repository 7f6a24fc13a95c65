package backend

import (
	"context"
	"database/sql"
	"strconv"
	"sync"

	auditDomain "github.com/hidolabs/hido/internal/audit/domain"
	apperrors "github.com/hidolabs/hido/internal/errors"
)

// MySQLBackend stores audit entries in an append-only MySQL table. Entry
// identifiers are AUTO_INCREMENT primary keys rendered as strings.
type MySQLBackend struct {
	db *sql.DB

	// mu serializes appends per backend instance, mirroring the PostgreSQL
	// variant's append-order contract.
	mu sync.Mutex
}

// NewMySQLBackend creates a MySQL audit backend over an existing connection
// pool.
func NewMySQLBackend(db *sql.DB) *MySQLBackend {
	return &MySQLBackend{db: db}
}

// Record inserts the entry and returns the auto-increment identifier as a
// string. MySQL has no RETURNING clause, so the identifier comes from
// LastInsertId on the same connection.
func (m *MySQLBackend) Record(ctx context.Context, entry *auditDomain.Entry) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	query := `INSERT INTO audit_entries (id, actor, action, target, content_hash, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	result, err := m.db.ExecContext(
		ctx,
		query,
		entry.ID.String(),
		entry.Actor,
		entry.Action,
		entry.Target,
		entry.ContentHash,
		entry.CreatedAt,
	)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrBackendUnavailable, err.Error())
	}

	entryID, err := result.LastInsertId()
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrBackendUnavailable, err.Error())
	}

	entry.EntryID = strconv.FormatInt(entryID, 10)
	return entry.EntryID, nil
}

// List retrieves entries in append order with optional field filters and
// pagination.
func (m *MySQLBackend) List(
	ctx context.Context,
	filter auditDomain.Filter,
) ([]*auditDomain.Entry, error) {
	query, args := buildListQuery(filter, placeholderQuestion)

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrBackendUnavailable, err.Error())
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanEntries(rows)
}

// Type returns the mysql backend tag.
func (m *MySQLBackend) Type() auditDomain.BackendType {
	return auditDomain.BackendMySQL
}

// Close is a no-op; the connection pool is owned by the container.
func (m *MySQLBackend) Close() error {
	return nil
}
