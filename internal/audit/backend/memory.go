package backend

import (
	"context"
	"strconv"
	"sync"

	auditDomain "github.com/hidolabs/hido/internal/audit/domain"
)

// MemoryBackend is the mock audit backend: an in-memory append-only log with
// a monotonically increasing counter rendered as the entry identifier.
//
// A single mutex serializes appends, which gives the entry-identifier
// uniqueness and append-order guarantees without further coordination.
type MemoryBackend struct {
	mu      sync.Mutex
	counter uint64
	entries []*auditDomain.Entry
}

// NewMemoryBackend creates an empty mock backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Record appends the entry and assigns the next counter value as its
// identifier.
func (m *MemoryBackend) Record(ctx context.Context, entry *auditDomain.Entry) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counter++
	entry.EntryID = strconv.FormatUint(m.counter, 10)
	m.entries = append(m.entries, entry)

	return entry.EntryID, nil
}

// List returns entries matching the filter in append order.
func (m *MemoryBackend) List(
	ctx context.Context,
	filter auditDomain.Filter,
) ([]*auditDomain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := make([]*auditDomain.Entry, 0)
	skipped := 0
	for _, entry := range m.entries {
		if !filter.Matches(entry) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		matched = append(matched, entry)
		if filter.Limit > 0 && len(matched) >= filter.Limit {
			break
		}
	}

	return matched, nil
}

// Type returns the mock backend tag.
func (m *MemoryBackend) Type() auditDomain.BackendType {
	return auditDomain.BackendMock
}

// Close is a no-op for the in-memory backend.
func (m *MemoryBackend) Close() error {
	return nil
}
