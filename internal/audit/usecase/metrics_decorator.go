package usecase

import (
	"context"
	"time"

	auditDomain "github.com/hidolabs/hido/internal/audit/domain"
	"github.com/hidolabs/hido/internal/metrics"
)

// ledgerUseCaseWithMetrics decorates LedgerUseCase with metrics instrumentation.
type ledgerUseCaseWithMetrics struct {
	next    LedgerUseCase
	metrics metrics.BusinessMetrics
}

// NewLedgerUseCaseWithMetrics wraps a LedgerUseCase with metrics recording.
func NewLedgerUseCaseWithMetrics(useCase LedgerUseCase, m metrics.BusinessMetrics) LedgerUseCase {
	return &ledgerUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Record records metrics for audit append operations.
func (l *ledgerUseCaseWithMetrics) Record(
	ctx context.Context,
	actor, action, target string,
) (*RecordReceipt, error) {
	start := time.Now()
	receipt, err := l.next.Record(ctx, actor, action, target)

	status := "success"
	if err != nil {
		status = "error"
	}

	l.metrics.RecordOperation(ctx, "audit", "record", status)
	l.metrics.RecordDuration(ctx, "audit", "record", time.Since(start), status)

	return receipt, err
}

// List records metrics for audit listing operations.
func (l *ledgerUseCaseWithMetrics) List(
	ctx context.Context,
	filter auditDomain.Filter,
) ([]*auditDomain.Entry, error) {
	start := time.Now()
	entries, err := l.next.List(ctx, filter)

	status := "success"
	if err != nil {
		status = "error"
	}

	l.metrics.RecordOperation(ctx, "audit", "list", status)
	l.metrics.RecordDuration(ctx, "audit", "list", time.Since(start), status)

	return entries, err
}

// BackendType passes through without metrics; it is pure and side-effect free.
func (l *ledgerUseCaseWithMetrics) BackendType() string {
	return l.next.BackendType()
}
