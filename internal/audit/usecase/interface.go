// Package usecase implements business logic orchestration for the audit ledger.
package usecase

import (
	"context"

	auditDomain "github.com/hidolabs/hido/internal/audit/domain"
)

// RecordReceipt is returned for every successful append: the ledger-assigned
// entry identifier plus the tag of the backend that stored it.
type RecordReceipt struct {
	EntryID     string
	BackendType string
}

// LedgerUseCase defines the audit operations exposed to callers.
type LedgerUseCase interface {
	// Record appends one actor/action/target event to the active backend.
	// All three fields must be non-empty (ErrInvalidInput). Transient backend
	// failures surface as ErrBackendUnavailable; the record is never retried
	// internally so a caller retry cannot silently duplicate entries.
	Record(ctx context.Context, actor, action, target string) (*RecordReceipt, error)

	// List returns recorded entries matching the filter in append order.
	List(ctx context.Context, filter auditDomain.Filter) ([]*auditDomain.Entry, error)

	// BackendType returns the stable lowercase tag of the active backend.
	BackendType() string
}
