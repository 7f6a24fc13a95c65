package usecase

import (
	"context"
	"time"

	identityDomain "github.com/hidolabs/hido/internal/identity/domain"
	"github.com/hidolabs/hido/internal/metrics"
)

// didManagerWithMetrics decorates DIDManager with metrics instrumentation.
type didManagerWithMetrics struct {
	next    DIDManager
	metrics metrics.BusinessMetrics
}

// NewDIDManagerWithMetrics wraps a DIDManager with metrics recording.
func NewDIDManagerWithMetrics(manager DIDManager, m metrics.BusinessMetrics) DIDManager {
	return &didManagerWithMetrics{
		next:    manager,
		metrics: m,
	}
}

// Generate records metrics for identity generation operations.
func (d *didManagerWithMetrics) Generate(ctx context.Context) (string, error) {
	start := time.Now()
	did, err := d.next.Generate(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "identity", "generate", status)
	d.metrics.RecordDuration(ctx, "identity", "generate", time.Since(start), status)

	return did, err
}

// Resolve records metrics for identity resolution operations.
func (d *didManagerWithMetrics) Resolve(
	ctx context.Context,
	did string,
) (*identityDomain.Document, error) {
	start := time.Now()
	document, err := d.next.Resolve(ctx, did)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "identity", "resolve", status)
	d.metrics.RecordDuration(ctx, "identity", "resolve", time.Since(start), status)

	return document, err
}

// Sign records metrics for signing operations.
func (d *didManagerWithMetrics) Sign(ctx context.Context, did string, message []byte) ([]byte, error) {
	start := time.Now()
	signature, err := d.next.Sign(ctx, did, message)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "identity", "sign", status)
	d.metrics.RecordDuration(ctx, "identity", "sign", time.Since(start), status)

	return signature, err
}

// Verify records metrics for verification operations.
func (d *didManagerWithMetrics) Verify(
	ctx context.Context,
	did string,
	message, signature []byte,
) (bool, error) {
	start := time.Now()
	valid, err := d.next.Verify(ctx, did, message, signature)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "identity", "verify", status)
	d.metrics.RecordDuration(ctx, "identity", "verify", time.Since(start), status)

	return valid, err
}

// List passes through without metrics; it is a read-only debugging aid.
func (d *didManagerWithMetrics) List(ctx context.Context) []string {
	return d.next.List(ctx)
}
