// Package http provides HTTP handlers for the audit ledger.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	auditDomain "github.com/hidolabs/hido/internal/audit/domain"
	"github.com/hidolabs/hido/internal/audit/http/dto"
	auditUseCase "github.com/hidolabs/hido/internal/audit/usecase"
	"github.com/hidolabs/hido/internal/httputil"
	customValidation "github.com/hidolabs/hido/internal/validation"
)

// AuditHandler handles HTTP requests for audit ledger operations.
type AuditHandler struct {
	ledgerUseCase auditUseCase.LedgerUseCase
	logger        *slog.Logger
}

// NewAuditHandler creates a new audit handler with required dependencies.
func NewAuditHandler(
	ledgerUseCase auditUseCase.LedgerUseCase,
	logger *slog.Logger,
) *AuditHandler {
	return &AuditHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// RecordHandler appends an actor/action/target event to the ledger.
// POST /v1/audit/entries
// Returns 201 Created with the ledger-assigned entry id and backend tag.
func (h *AuditHandler) RecordHandler(c *gin.Context) {
	var req dto.RecordEntryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	receipt, err := h.ledgerUseCase.Record(c.Request.Context(), req.Actor, req.Action, req.Target)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapReceiptToResponse(receipt))
}

// ListHandler returns recorded entries matching the query filters.
// GET /v1/audit/entries?actor=&action=&target=&offset=&limit=
// Returns 200 OK with entries in append order.
func (h *AuditHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	filter := auditDomain.Filter{}
	if actor := c.Query("actor"); actor != "" {
		filter = filter.ByActor(actor)
	}
	if action := c.Query("action"); action != "" {
		filter = filter.ByAction(action)
	}
	if target := c.Query("target"); target != "" {
		filter = filter.ByTarget(target)
	}
	filter = filter.WithPagination(offset, limit)

	entries, err := h.ledgerUseCase.List(c.Request.Context(), filter)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEntriesToListResponse(entries))
}
