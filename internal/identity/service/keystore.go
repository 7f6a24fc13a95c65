package service

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	apperrors "github.com/hidolabs/hido/internal/errors"
	identityDomain "github.com/hidolabs/hido/internal/identity/domain"
)

// Ed25519KeyStore implements the KeyStore interface using Ed25519 signatures.
//
// Ed25519 gives deterministic signatures, small fixed-size keys (32 bytes
// public, 64 bytes private) and 64-byte signatures, which keeps DID derivation
// and the wire contract simple.
type Ed25519KeyStore struct{}

// NewEd25519KeyStore creates a new Ed25519-backed key store.
func NewEd25519KeyStore() *Ed25519KeyStore {
	return &Ed25519KeyStore{}
}

// GenerateKeypair produces a fresh Ed25519 keypair using crypto/rand.
// An error here means the entropy source failed and the operation chain
// should be aborted rather than continued with a weakened key.
func (k *Ed25519KeyStore) GenerateKeypair() (identityDomain.Keypair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return identityDomain.Keypair{}, fmt.Errorf("failed to generate keypair: %w", err)
	}

	return identityDomain.Keypair{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	}, nil
}

// Sign signs a message with the private key.
func (k *Ed25519KeyStore) Sign(privateKey ed25519.PrivateKey, message []byte) ([]byte, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return nil, apperrors.Wrap(
			apperrors.ErrInvalidKey,
			fmt.Sprintf("private key must be %d bytes, got %d", ed25519.PrivateKeySize, len(privateKey)),
		)
	}

	return ed25519.Sign(privateKey, message), nil
}

// Verify reports whether the signature matches the message under the public key.
// Structurally malformed keys and signatures are errors; a mismatch is not.
func (k *Ed25519KeyStore) Verify(publicKey ed25519.PublicKey, message, signature []byte) (bool, error) {
	if len(publicKey) != ed25519.PublicKeySize {
		return false, apperrors.Wrap(
			apperrors.ErrInvalidKey,
			fmt.Sprintf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(publicKey)),
		)
	}
	if len(signature) != ed25519.SignatureSize {
		return false, apperrors.Wrap(
			apperrors.ErrInvalidSignatureFormat,
			fmt.Sprintf("signature must be %d bytes, got %d", ed25519.SignatureSize, len(signature)),
		)
	}

	return ed25519.Verify(publicKey, message, signature), nil
}
