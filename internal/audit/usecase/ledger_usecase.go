package usecase

import (
	"context"

	auditBackend "github.com/hidolabs/hido/internal/audit/backend"
	auditDomain "github.com/hidolabs/hido/internal/audit/domain"
	apperrors "github.com/hidolabs/hido/internal/errors"
)

// ledgerUseCase implements LedgerUseCase over a single backend instance.
type ledgerUseCase struct {
	backend auditBackend.Backend
}

// NewLedgerUseCase creates a new LedgerUseCase over the provided backend.
func NewLedgerUseCase(backend auditBackend.Backend) LedgerUseCase {
	return &ledgerUseCase{
		backend: backend,
	}
}

// Record validates the event fields, stamps the entry with an identifier,
// timestamp and content hash, and appends it to the backend.
func (l *ledgerUseCase) Record(
	ctx context.Context,
	actor, action, target string,
) (*RecordReceipt, error) {
	if actor == "" {
		return nil, auditDomain.ErrEmptyActor
	}
	if action == "" {
		return nil, auditDomain.ErrEmptyAction
	}
	if target == "" {
		return nil, auditDomain.ErrEmptyTarget
	}

	entry := auditDomain.NewEntry(actor, action, target)

	entryID, err := l.backend.Record(ctx, entry)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to record audit entry")
	}

	return &RecordReceipt{
		EntryID:     entryID,
		BackendType: l.backend.Type().String(),
	}, nil
}

// List retrieves recorded entries matching the filter.
func (l *ledgerUseCase) List(
	ctx context.Context,
	filter auditDomain.Filter,
) ([]*auditDomain.Entry, error) {
	entries, err := l.backend.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit entries")
	}

	return entries, nil
}

// BackendType returns the active backend's tag.
func (l *ledgerUseCase) BackendType() string {
	return l.backend.Type().String()
}
