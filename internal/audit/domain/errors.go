package domain

import (
	"github.com/hidolabs/hido/internal/errors"
)

// Audit errors.
var (
	// ErrEmptyActor indicates a record call without an actor DID.
	ErrEmptyActor = errors.Wrap(errors.ErrInvalidInput, "audit actor must not be empty")

	// ErrEmptyAction indicates a record call without an action.
	ErrEmptyAction = errors.Wrap(errors.ErrInvalidInput, "audit action must not be empty")

	// ErrEmptyTarget indicates a record call without a target.
	ErrEmptyTarget = errors.Wrap(errors.ErrInvalidInput, "audit target must not be empty")

	// ErrUnknownBackend indicates an unrecognized backend kind in configuration.
	ErrUnknownBackend = errors.Wrap(errors.ErrInvalidInput, "unknown audit backend kind")

	// ErrChainTampered indicates the hash chain failed integrity verification.
	ErrChainTampered = errors.New("audit chain integrity violation")
)
