package domain

import (
	"github.com/hidolabs/hido/internal/errors"
)

// Intent errors.
var (
	// ErrEmptyAction indicates an intent was created without an action.
	ErrEmptyAction = errors.Wrap(errors.ErrInvalidInput, "intent action must not be empty")

	// ErrEmptyDomain indicates an intent was created without a domain.
	ErrEmptyDomain = errors.Wrap(errors.ErrInvalidInput, "intent domain must not be empty")

	// ErrEmptyParamKey indicates a parameter was added with an empty key.
	ErrEmptyParamKey = errors.Wrap(errors.ErrInvalidInput, "intent parameter key must not be empty")

	// ErrInvalidPriority indicates a priority value outside {0,1,2,3}.
	ErrInvalidPriority = errors.Wrap(errors.ErrInvalidInput, "invalid priority level")

	// ErrIntentFrozen indicates a mutation was attempted after serialization.
	ErrIntentFrozen = errors.Wrap(errors.ErrInvalidInput, "intent is frozen after serialization")
)
