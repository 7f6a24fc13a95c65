package domain

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Document holds the public metadata bound to a DID: the DID itself, the
// public key material, the creation timestamp and the verification method
// descriptor. Documents are created once at generation time and never updated.
type Document struct {
	DID                string
	PublicKey          ed25519.PublicKey
	CreatedAt          time.Time
	VerificationMethod string
}

// documentJSON fixes the canonical field order of the wire representation.
type documentJSON struct {
	DID                string `json:"did"`
	PublicKey          string `json:"publicKey"`
	CreatedAt          string `json:"createdAt"`
	VerificationMethod string `json:"verificationMethod"`
}

// NewDocument builds the Document for a freshly derived DID.
//
// The creation timestamp is truncated to whole seconds in UTC so repeated
// canonical serialization of the same Document is byte-identical.
func NewDocument(did string, publicKey ed25519.PublicKey) *Document {
	return &Document{
		DID:                did,
		PublicKey:          publicKey,
		CreatedAt:          time.Now().UTC().Truncate(time.Second),
		VerificationMethod: fmt.Sprintf("%s#key-1:%s", did, VerificationMethodType),
	}
}

// CanonicalJSON serializes the Document to its canonical JSON representation:
// {"did","publicKey","createdAt","verificationMethod"} with the public key in
// standard base64 and the creation time in RFC 3339 UTC. This shape is the
// interoperability contract and must stay stable across versions.
func (d *Document) CanonicalJSON() (string, error) {
	data, err := json.Marshal(documentJSON{
		DID:                d.DID,
		PublicKey:          base64.StdEncoding.EncodeToString(d.PublicKey),
		CreatedAt:          d.CreatedAt.UTC().Format(time.RFC3339),
		VerificationMethod: d.VerificationMethod,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}
	return string(data), nil
}

// MarshalJSON renders the Document in its canonical shape.
func (d *Document) MarshalJSON() ([]byte, error) {
	s, err := d.CanonicalJSON()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
