// Package service provides cryptographic primitives for agent identities.
// Implements Ed25519 key generation, signing and verification.
package service

import (
	"crypto/ed25519"

	identityDomain "github.com/hidolabs/hido/internal/identity/domain"
)

// KeyStore defines the low-level cryptographic operations used by the DID
// manager. Implementations own key generation and must never retain private
// key material beyond what the caller passes in.
type KeyStore interface {
	// GenerateKeypair produces a fresh keypair from a cryptographically secure
	// random source. The only failure mode is entropy-source exhaustion, which
	// is not recoverable.
	GenerateKeypair() (identityDomain.Keypair, error)

	// Sign signs a message with the private key. Returns ErrInvalidKey if the
	// key is malformed.
	Sign(privateKey ed25519.PrivateKey, message []byte) ([]byte, error)

	// Verify reports whether the signature matches the message under the
	// public key. A well-formed but non-matching signature returns
	// (false, nil). Returns ErrInvalidKey or ErrInvalidSignatureFormat only
	// for structurally malformed input.
	Verify(publicKey ed25519.PublicKey, message, signature []byte) (bool, error)
}
