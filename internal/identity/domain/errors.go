package domain

import (
	"github.com/hidolabs/hido/internal/errors"
)

// Identity errors.
var (
	// ErrDIDNotFound indicates a DID was never generated by this manager instance.
	ErrDIDNotFound = errors.Wrap(errors.ErrNotFound, "did not found")

	// ErrInvalidDIDFormat indicates a string is not a well-formed did:hido identifier.
	ErrInvalidDIDFormat = errors.Wrap(errors.ErrInvalidInput, "invalid did format")
)
