// Package validation provides custom validation rules for the application.
package validation

import (
	"encoding/base64"

	validation "github.com/jellydator/validation"

	apperrors "github.com/hidolabs/hido/internal/errors"
	identityDomain "github.com/hidolabs/hido/internal/identity/domain"
	intentDomain "github.com/hidolabs/hido/internal/intent/domain"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Base64 validates that a string is valid base64-encoded data.
var Base64 = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_base64_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	_, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return validation.NewError("validation_base64", "must be valid base64-encoded data")
	}
	return nil
})

// DID validates that a string is a well-formed decentralized identifier.
var DID = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_did_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if err := identityDomain.ValidateDID(s); err != nil {
		return validation.NewError(
			"validation_did",
			"must be a did:hido identifier with a 16 character hex suffix",
		)
	}
	return nil
})

// PriorityLabel validates that a string names a known priority level.
var PriorityLabel = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_priority_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if _, err := intentDomain.ParsePriorityLabel(s); err != nil {
		return validation.NewError(
			"validation_priority",
			"must be one of: Low, Normal, High, Critical",
		)
	}
	return nil
})

// BackendTag validates that a string names a known audit backend variant.
var BackendTag = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_backend_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	switch s {
	case "mock", "blockchain", "postgresql", "mysql":
		return nil
	}
	return validation.NewError(
		"validation_backend",
		"must be one of: mock, blockchain, postgresql, mysql",
	)
})
