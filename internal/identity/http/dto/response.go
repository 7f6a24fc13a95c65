package dto

import (
	"encoding/base64"
	"time"

	identityDomain "github.com/hidolabs/hido/internal/identity/domain"
)

// DocumentResponse represents a DID document in API responses. The field
// order and encoding mirror the canonical document serialization.
type DocumentResponse struct {
	DID                string `json:"did"`
	PublicKey          string `json:"publicKey"`
	CreatedAt          string `json:"createdAt"`
	VerificationMethod string `json:"verificationMethod"`
}

// MapDocumentToResponse converts a domain document to its API representation.
func MapDocumentToResponse(document *identityDomain.Document) DocumentResponse {
	return DocumentResponse{
		DID:                document.DID,
		PublicKey:          base64.StdEncoding.EncodeToString(document.PublicKey),
		CreatedAt:          document.CreatedAt.UTC().Format(time.RFC3339),
		VerificationMethod: document.VerificationMethod,
	}
}

// GenerateIdentityResponse is returned after a new identity is created.
type GenerateIdentityResponse struct {
	DID      string           `json:"did"`
	Document DocumentResponse `json:"document"`
}

// SignResponse carries the base64-encoded signature over the request message.
type SignResponse struct {
	DID       string `json:"did"`
	Signature string `json:"signature"`
}

// VerifyResponse reports whether a signature matched.
type VerifyResponse struct {
	DID   string `json:"did"`
	Valid bool   `json:"valid"`
}

// ListIdentitiesResponse represents the DIDs known to this node.
type ListIdentitiesResponse struct {
	Data []string `json:"data"`
}
