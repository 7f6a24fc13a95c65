package domain

import (
	"crypto/ed25519"
	"encoding/hex"
	"regexp"
	"strings"

	"golang.org/x/crypto/sha3"
)

// didRegex matches a well-formed did:hido identifier.
var didRegex = regexp.MustCompile(`^did:hido:[0-9a-f]{16}$`)

// DeriveDID derives the DID string for a public key.
//
// The opaque identifier is the first 16 hex characters of the SHA3-256 hash of
// the raw public key bytes, so derivation is deterministic and resolution is a
// pure lookup.
func DeriveDID(publicKey ed25519.PublicKey) string {
	hash := sha3.Sum256(publicKey)
	return DIDPrefix + hex.EncodeToString(hash[:])[:DIDIdentifierLength]
}

// ValidateDID returns ErrInvalidDIDFormat if the string is not a well-formed
// did:hido identifier.
func ValidateDID(did string) error {
	if !didRegex.MatchString(did) {
		return ErrInvalidDIDFormat
	}
	return nil
}

// IsDID reports whether the string looks like an identifier minted by this
// service, without validating the opaque part.
func IsDID(s string) bool {
	return strings.HasPrefix(s, DIDPrefix)
}
