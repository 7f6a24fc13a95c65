// Package domain provides the append-only audit record model: immutable
// actor/action/target events with tamper-evident content hashes.
package domain

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

// Entry is one immutable audit record. Entries are created by the ledger use
// case, assigned a backend entry identifier on append, and never mutated or
// deleted afterwards.
type Entry struct {
	// ID is the process-assigned record identifier (UUIDv7).
	ID uuid.UUID
	// Actor is the DID string of the agent performing the action.
	Actor string
	// Action is the action performed.
	Action string
	// Target is the resource the action was performed against.
	Target string
	// CreatedAt is the record creation time in UTC.
	CreatedAt time.Time
	// ContentHash is the hex SHA3-256 over the entry's identifying fields,
	// set before the entry reaches a backend.
	ContentHash string
	// EntryID is the ledger-assigned identifier, opaque to callers. Its value
	// space depends on the backend (counter, serial, block hash).
	EntryID string
}

// NewEntry builds an audit entry with a fresh UUIDv7, a UTC timestamp
// truncated to whole seconds and a computed content hash.
func NewEntry(actor, action, target string) *Entry {
	entry := &Entry{
		ID:        uuid.Must(uuid.NewV7()),
		Actor:     actor,
		Action:    action,
		Target:    target,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	entry.ContentHash = entry.ComputeHash()
	return entry
}

// ComputeHash returns the hex SHA3-256 over the entry's identifying fields.
// The backend entry identifier is excluded: it is minted after hashing.
func (e *Entry) ComputeHash() string {
	data := fmt.Sprintf(
		"%s:%s:%s:%s:%s",
		e.ID, e.Actor, e.Action, e.Target, e.CreatedAt.UTC().Format(time.RFC3339),
	)
	hash := sha3.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// VerifyHash reports whether the stored content hash still matches the
// entry's fields.
func (e *Entry) VerifyHash() bool {
	return e.ContentHash != "" && e.ContentHash == e.ComputeHash()
}
