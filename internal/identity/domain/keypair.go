package domain

import (
	"crypto/ed25519"
)

// Keypair holds an Ed25519 key pair generated by the key store.
//
// The private key never leaves the identity module boundary except as a
// signature output. Callers outside the module only ever see the public key
// (through the Document) and DID strings.
type Keypair struct {
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}
