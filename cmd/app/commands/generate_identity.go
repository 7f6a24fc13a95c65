package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	identityDomain "github.com/hidolabs/hido/internal/identity/domain"
	identityService "github.com/hidolabs/hido/internal/identity/service"
)

// RunGenerateIdentity creates a new agent identity and prints its DID and
// document. The private key is printed only when explicitly requested; it is
// not stored anywhere, so a discarded key cannot be recovered.
func RunGenerateIdentity(ctx context.Context, writer io.Writer, showPrivateKey bool) error {
	keyStore := identityService.NewEd25519KeyStore()

	keypair, err := keyStore.GenerateKeypair()
	if err != nil {
		return fmt.Errorf("failed to generate keypair: %w", err)
	}

	did := identityDomain.DeriveDID(keypair.PublicKey)
	document := identityDomain.NewDocument(did, keypair.PublicKey)

	canonical, err := document.CanonicalJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	fmt.Fprintf(writer, "DID: %s\n", did)
	fmt.Fprintf(writer, "Document: %s\n", canonical)

	if showPrivateKey {
		fmt.Fprintf(writer, "Private key: %s\n", base64.StdEncoding.EncodeToString(keypair.PrivateKey))
		fmt.Fprintln(writer, "Store the private key securely. It cannot be recovered later.")
	}

	return nil
}
