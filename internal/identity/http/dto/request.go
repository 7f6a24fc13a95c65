// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/hidolabs/hido/internal/validation"
)

// SignRequest contains the base64-encoded message to sign. The DID is
// extracted from the URL parameter, not the request body.
type SignRequest struct {
	Message string `json:"message" binding:"required"`
}

// Validate checks if the sign request is valid.
func (r *SignRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Message,
			validation.Required,
			customValidation.Base64,
		),
	)
}

// VerifyRequest contains the base64-encoded message and signature to check.
// The DID is extracted from the URL parameter, not the request body.
type VerifyRequest struct {
	Message   string `json:"message" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// Validate checks if the verify request is valid.
func (r *VerifyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Message,
			validation.Required,
			customValidation.Base64,
		),
		validation.Field(&r.Signature,
			validation.Required,
			customValidation.Base64,
		),
	)
}
