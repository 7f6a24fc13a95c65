package backend

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"sync"

	auditDomain "github.com/hidolabs/hido/internal/audit/domain"
	apperrors "github.com/hidolabs/hido/internal/errors"
)

// PostgreSQLBackend stores audit entries in an append-only PostgreSQL table.
// Entry identifiers are BIGSERIAL primary keys rendered as strings, so append
// order and identifier order coincide.
type PostgreSQLBackend struct {
	db *sql.DB

	// mu serializes appends per backend instance; the serial column already
	// guarantees unique identifiers, the lock preserves the append-order
	// observation contract for concurrent callers.
	mu sync.Mutex
}

// NewPostgreSQLBackend creates a PostgreSQL audit backend over an existing
// connection pool.
func NewPostgreSQLBackend(db *sql.DB) *PostgreSQLBackend {
	return &PostgreSQLBackend{db: db}
}

// Record inserts the entry and returns the serial identifier as a string.
func (p *PostgreSQLBackend) Record(ctx context.Context, entry *auditDomain.Entry) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	query := `INSERT INTO audit_entries (id, actor, action, target, content_hash, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING entry_id`

	var entryID int64
	err := p.db.QueryRowContext(
		ctx,
		query,
		entry.ID,
		entry.Actor,
		entry.Action,
		entry.Target,
		entry.ContentHash,
		entry.CreatedAt,
	).Scan(&entryID)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrBackendUnavailable, err.Error())
	}

	entry.EntryID = strconv.FormatInt(entryID, 10)
	return entry.EntryID, nil
}

// List retrieves entries in append order with optional field filters and
// pagination.
func (p *PostgreSQLBackend) List(
	ctx context.Context,
	filter auditDomain.Filter,
) ([]*auditDomain.Entry, error) {
	query, args := buildListQuery(filter, placeholderDollar)

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrBackendUnavailable, err.Error())
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanEntries(rows)
}

// Type returns the postgresql backend tag.
func (p *PostgreSQLBackend) Type() auditDomain.BackendType {
	return auditDomain.BackendPostgreSQL
}

// Close is a no-op; the connection pool is owned by the container.
func (p *PostgreSQLBackend) Close() error {
	return nil
}

// placeholder styles for the two SQL dialects.
const (
	placeholderDollar   = "$"
	placeholderQuestion = "?"
)

// buildListQuery assembles the filtered listing query for either dialect.
func buildListQuery(filter auditDomain.Filter, style string) (string, []any) {
	var sb strings.Builder
	sb.WriteString(
		`SELECT entry_id, id, actor, action, target, content_hash, created_at
		 FROM audit_entries`,
	)

	args := make([]any, 0, 5)
	conditions := make([]string, 0, 3)

	addCondition := func(column, value string) {
		args = append(args, value)
		conditions = append(conditions, column+" = "+nextPlaceholder(style, len(args)))
	}

	if filter.Actor != "" {
		addCondition("actor", filter.Actor)
	}
	if filter.Action != "" {
		addCondition("action", filter.Action)
	}
	if filter.Target != "" {
		addCondition("target", filter.Target)
	}

	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	sb.WriteString(" ORDER BY entry_id ASC")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(" LIMIT " + nextPlaceholder(style, len(args)))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		sb.WriteString(" OFFSET " + nextPlaceholder(style, len(args)))
	}

	return sb.String(), args
}

// nextPlaceholder renders the n-th placeholder for the dialect.
func nextPlaceholder(style string, n int) string {
	if style == placeholderDollar {
		return placeholderDollar + strconv.Itoa(n)
	}
	return placeholderQuestion
}

// scanEntries maps listing rows back to domain entries.
func scanEntries(rows *sql.Rows) ([]*auditDomain.Entry, error) {
	entries := make([]*auditDomain.Entry, 0)
	for rows.Next() {
		var entry auditDomain.Entry
		var entryID int64

		err := rows.Scan(
			&entryID,
			&entry.ID,
			&entry.Actor,
			&entry.Action,
			&entry.Target,
			&entry.ContentHash,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan audit entry")
		}

		entry.EntryID = strconv.FormatInt(entryID, 10)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate audit entries")
	}

	return entries, nil
}
