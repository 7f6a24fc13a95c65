// Package backend provides the pluggable audit storage variants: an in-memory
// mock, a hash-chained blockchain-anchored ledger, and SQL stores.
package backend

import (
	"context"

	auditDomain "github.com/hidolabs/hido/internal/audit/domain"
)

// Backend is the capability every audit storage variant implements.
//
// Record appends one entry and returns the backend-assigned entry identifier.
// Appends on a single backend instance are linearized: no two calls are ever
// assigned the same identifier, and any single reader observes entries in the
// order Record calls returned. Retries are the caller's responsibility.
type Backend interface {
	// Record appends an entry and returns the ledger-assigned entry identifier.
	// Returns ErrBackendUnavailable on transient infrastructure failure.
	Record(ctx context.Context, entry *auditDomain.Entry) (string, error)

	// List returns entries matching the filter in append order.
	List(ctx context.Context, filter auditDomain.Filter) ([]*auditDomain.Entry, error)

	// Type returns the stable lowercase tag identifying the variant.
	Type() auditDomain.BackendType

	// Close releases backend-owned resources.
	Close() error
}
