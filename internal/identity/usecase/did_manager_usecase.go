package usecase

import (
	"context"
	"sync"

	apperrors "github.com/hidolabs/hido/internal/errors"
	identityDomain "github.com/hidolabs/hido/internal/identity/domain"
	identityService "github.com/hidolabs/hido/internal/identity/service"
)

// registration binds a Document to its keypair inside the manager.
type registration struct {
	document *identityDomain.Document
	keypair  identityDomain.Keypair
}

// didManagerUseCase implements DIDManager over an insert-only map guarded by
// a readers-writer mutex. Generate is the only writer; Resolve, Sign, Verify
// and List take the read lock, so no reader ever observes a partially
// constructed Document.
type didManagerUseCase struct {
	keyStore identityService.KeyStore

	mu   sync.RWMutex
	dids map[string]*registration
}

// NewDIDManager creates a new DIDManager backed by the provided key store.
func NewDIDManager(keyStore identityService.KeyStore) DIDManager {
	return &didManagerUseCase{
		keyStore: keyStore,
		dids:     make(map[string]*registration),
	}
}

// Generate creates a keypair, derives the DID from the public key and stores
// the Document. A derivation collision is cryptographically negligible, but a
// fresh keypair is drawn anyway if one ever occurs so a DID is never reused.
func (d *didManagerUseCase) Generate(ctx context.Context) (string, error) {
	for {
		keypair, err := d.keyStore.GenerateKeypair()
		if err != nil {
			return "", apperrors.Wrap(err, "failed to generate identity")
		}

		did := identityDomain.DeriveDID(keypair.PublicKey)

		d.mu.Lock()
		if _, exists := d.dids[did]; exists {
			d.mu.Unlock()
			continue
		}
		d.dids[did] = &registration{
			document: identityDomain.NewDocument(did, keypair.PublicKey),
			keypair:  keypair,
		}
		d.mu.Unlock()

		return did, nil
	}
}

// Resolve returns the Document for a DID generated by this manager.
func (d *didManagerUseCase) Resolve(ctx context.Context, did string) (*identityDomain.Document, error) {
	d.mu.RLock()
	reg, ok := d.dids[did]
	d.mu.RUnlock()

	if !ok {
		return nil, identityDomain.ErrDIDNotFound
	}

	return reg.document, nil
}

// Sign signs a message with the private key bound to the DID.
func (d *didManagerUseCase) Sign(ctx context.Context, did string, message []byte) ([]byte, error) {
	d.mu.RLock()
	reg, ok := d.dids[did]
	d.mu.RUnlock()

	if !ok {
		return nil, identityDomain.ErrDIDNotFound
	}

	signature, err := d.keyStore.Sign(reg.keypair.PrivateKey, message)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign message")
	}

	return signature, nil
}

// Verify checks a signature against the public key bound to the DID.
func (d *didManagerUseCase) Verify(
	ctx context.Context,
	did string,
	message, signature []byte,
) (bool, error) {
	d.mu.RLock()
	reg, ok := d.dids[did]
	d.mu.RUnlock()

	if !ok {
		return false, identityDomain.ErrDIDNotFound
	}

	return d.keyStore.Verify(reg.keypair.PublicKey, message, signature)
}

// List returns all DIDs generated by this manager.
func (d *didManagerUseCase) List(ctx context.Context) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	dids := make([]string, 0, len(d.dids))
	for did := range d.dids {
		dids = append(dids, did)
	}

	return dids
}
