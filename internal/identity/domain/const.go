package domain

const (
	// DIDPrefix is the method prefix for all identifiers minted by this service.
	DIDPrefix = "did:hido:"

	// DIDIdentifierLength is the number of hex characters of the public key hash
	// kept in the DID string.
	DIDIdentifierLength = 16

	// VerificationMethodType names the signature suite bound to every Document.
	VerificationMethodType = "Ed25519VerificationKey2020"
)
