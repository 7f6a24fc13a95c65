// Package usecase implements business logic orchestration for agent identities.
package usecase

import (
	"context"

	identityDomain "github.com/hidolabs/hido/internal/identity/domain"
)

// DIDManager defines the identity operations exposed to callers.
//
// A manager owns the mapping from DID to (Document, Keypair) for its own
// lifetime. Resolution is local to the manager instance: DIDs generated
// elsewhere are unknown by design, not by omission.
type DIDManager interface {
	// Generate creates a new keypair, derives the DID, stores the Document
	// and returns the DID string. Safe for concurrent use; two concurrent
	// calls never return the same DID.
	Generate(ctx context.Context) (string, error)

	// Resolve returns the Document for a DID generated by this manager.
	// Returns ErrDIDNotFound for any other DID.
	Resolve(ctx context.Context, did string) (*identityDomain.Document, error)

	// Sign signs a message with the private key bound to the DID.
	// Returns ErrDIDNotFound if the DID is unknown.
	Sign(ctx context.Context, did string, message []byte) ([]byte, error)

	// Verify reports whether the signature matches the message under the
	// public key bound to the DID. A mismatch returns (false, nil); only
	// unknown DIDs and malformed input produce errors.
	Verify(ctx context.Context, did string, message, signature []byte) (bool, error)

	// List returns the DIDs generated by this manager, in no particular order.
	List(ctx context.Context) []string
}
