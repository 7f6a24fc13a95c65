// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/hidolabs/hido/internal/validation"
)

// RecordEntryRequest contains the parameters for appending an audit entry.
// The actor is the DID of the agent performing the action.
type RecordEntryRequest struct {
	Actor  string `json:"actor" binding:"required"`
	Action string `json:"action" binding:"required"`
	Target string `json:"target" binding:"required"`
}

// Validate checks if the record entry request is valid.
func (r *RecordEntryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Actor,
			validation.Required,
			customValidation.DID,
		),
		validation.Field(&r.Action, validation.Required),
		validation.Field(&r.Target, validation.Required),
	)
}
