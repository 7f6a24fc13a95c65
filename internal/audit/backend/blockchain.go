package backend

import (
	"context"
	"log/slog"
	"sync"

	auditDomain "github.com/hidolabs/hido/internal/audit/domain"
	apperrors "github.com/hidolabs/hido/internal/errors"
)

// BlockchainBackend stores entries in an in-process hash chain and anchors
// every block hash to an external anchoring service. Entry identifiers are
// block-hash hex strings and must be treated as opaque by callers.
type BlockchainBackend struct {
	// mu serializes appends so block heights, predecessor links and entry
	// identifiers stay consistent under concurrent Record calls.
	mu     sync.Mutex
	chain  chain
	anchor *AnchorClient
	logger *slog.Logger
}

// NewBlockchainBackend creates the blockchain-anchored backend. The anchoring
// service is health-checked up front; an unreachable service fails with
// ErrBackendUnavailable so the caller can fall back to another variant
// without this failure poisoning later factory calls.
func NewBlockchainBackend(
	ctx context.Context,
	anchor *AnchorClient,
	logger *slog.Logger,
) (*BlockchainBackend, error) {
	if err := anchor.Health(ctx); err != nil {
		return nil, apperrors.Wrap(err, "anchoring service unreachable")
	}

	return &BlockchainBackend{
		anchor: anchor,
		logger: logger,
	}, nil
}

// Record appends a block for the entry and anchors its hash. The anchoring
// round trip happens before the block is committed to the chain, so a failed
// anchor never leaves a half-recorded entry behind.
func (b *BlockchainBackend) Record(ctx context.Context, entry *auditDomain.Entry) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	block := b.chain.prepare(entry)

	txRef, err := b.anchor.Anchor(ctx, block.Hash)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to anchor block")
	}

	b.chain.commit(block)
	entry.EntryID = block.Hash

	b.logger.Debug("audit block anchored",
		slog.Uint64("height", block.Height),
		slog.String("block_hash", block.Hash),
		slog.String("tx_ref", txRef),
	)

	return entry.EntryID, nil
}

// List returns entries matching the filter in chain order.
func (b *BlockchainBackend) List(
	ctx context.Context,
	filter auditDomain.Filter,
) ([]*auditDomain.Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	matched := make([]*auditDomain.Entry, 0)
	skipped := 0
	for _, block := range b.chain.blocks {
		if !filter.Matches(block.Entry) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		matched = append(matched, block.Entry)
		if filter.Limit > 0 && len(matched) >= filter.Limit {
			break
		}
	}

	return matched, nil
}

// VerifyChain walks the full chain and returns ErrChainTampered on the first
// broken link or modified entry.
func (b *BlockchainBackend) VerifyChain(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.chain.verify()
}

// Height returns the number of blocks in the chain.
func (b *BlockchainBackend) Height(ctx context.Context) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return uint64(len(b.chain.blocks))
}

// Type returns the blockchain backend tag.
func (b *BlockchainBackend) Type() auditDomain.BackendType {
	return auditDomain.BackendBlockchain
}

// Close is a no-op; the anchor client's connections are managed by net/http.
func (b *BlockchainBackend) Close() error {
	return nil
}
