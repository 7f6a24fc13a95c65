// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/hidolabs/hido/internal/validation"
)

// BuildIntentRequest contains the parameters for building a semantic intent.
// Priority is the level label (Low, Normal, High, Critical) and defaults to
// Normal when omitted.
type BuildIntentRequest struct {
	Action   string            `json:"action" binding:"required"`
	Domain   string            `json:"domain" binding:"required"`
	Target   *string           `json:"target"`
	Priority string            `json:"priority"`
	Params   map[string]string `json:"params"`
}

// Validate checks if the build intent request is valid.
func (r *BuildIntentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Action, validation.Required),
		validation.Field(&r.Domain, validation.Required),
		validation.Field(&r.Priority, customValidation.PriorityLabel),
	)
}
