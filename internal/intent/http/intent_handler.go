// Package http provides HTTP handlers for semantic intent construction.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/hidolabs/hido/internal/httputil"
	intentDomain "github.com/hidolabs/hido/internal/intent/domain"
	"github.com/hidolabs/hido/internal/intent/http/dto"
	customValidation "github.com/hidolabs/hido/internal/validation"
)

// IntentHandler handles HTTP requests for semantic intent construction.
type IntentHandler struct {
	logger *slog.Logger
}

// NewIntentHandler creates a new intent handler.
func NewIntentHandler(logger *slog.Logger) *IntentHandler {
	return &IntentHandler{logger: logger}
}

// BuildHandler constructs a semantic intent and returns its canonical form.
// POST /v1/intents
// Returns 201 Created with the canonical intent document.
func (h *IntentHandler) BuildHandler(c *gin.Context) {
	var req dto.BuildIntentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	intent, err := intentDomain.New(req.Action, req.Domain)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if req.Target != nil {
		intent.SetTarget(*req.Target)
	}

	if req.Priority != "" {
		priority, err := intentDomain.ParsePriorityLabel(req.Priority)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		intent.SetPriority(priority)
	}

	// Insert params in sorted key order so a deferred empty-key error is
	// deterministic regardless of map iteration order.
	keys := make([]string, 0, len(req.Params))
	for key := range req.Params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		intent.AddParam(key, req.Params[key])
	}

	canonical, err := intent.CanonicalJSON()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.BuildIntentResponse{
		Intent: json.RawMessage(canonical),
	})
}
