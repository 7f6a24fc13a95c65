package domain

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/sha3"
)

func TestDeriveDID(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		publicKey := ed25519.PublicKey(bytes.Repeat([]byte{0x01}, ed25519.PublicKeySize))

		first := DeriveDID(publicKey)
		second := DeriveDID(publicKey)

		assert.Equal(t, first, second)
		assert.NoError(t, ValidateDID(first))
	})

	t.Run("MatchesHashPrefix", func(t *testing.T) {
		publicKey := ed25519.PublicKey(bytes.Repeat([]byte{0x02}, ed25519.PublicKeySize))

		hash := sha3.Sum256(publicKey)
		want := DIDPrefix + hex.EncodeToString(hash[:])[:DIDIdentifierLength]

		assert.Equal(t, want, DeriveDID(publicKey))
	})

	t.Run("DistinctKeysDistinctDIDs", func(t *testing.T) {
		a := ed25519.PublicKey(bytes.Repeat([]byte{0x03}, ed25519.PublicKeySize))
		b := ed25519.PublicKey(bytes.Repeat([]byte{0x04}, ed25519.PublicKeySize))

		assert.NotEqual(t, DeriveDID(a), DeriveDID(b))
	})
}

func TestValidateDID(t *testing.T) {
	tests := []struct {
		name    string
		did     string
		wantErr bool
	}{
		{"Valid", "did:hido:0a1b2c3d4e5f6071", false},
		{"WrongMethod", "did:key:0a1b2c3d4e5f6071", true},
		{"TooShort", "did:hido:0a1b2c", true},
		{"TooLong", "did:hido:0a1b2c3d4e5f60718293", true},
		{"UppercaseHex", "did:hido:0A1B2C3D4E5F6071", true},
		{"NonHex", "did:hido:0a1b2c3d4e5f607z", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDID(tt.did)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDIDFormat)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestIsDID(t *testing.T) {
	assert.True(t, IsDID("did:hido:0a1b2c3d4e5f6071"))
	assert.False(t, IsDID("did:key:0a1b2c3d4e5f6071"))
	assert.False(t, IsDID("agent-7"))
}
