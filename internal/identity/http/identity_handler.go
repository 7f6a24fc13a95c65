// Package http provides HTTP handlers for agent identity operations.
package http

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hidolabs/hido/internal/httputil"
	identityDomain "github.com/hidolabs/hido/internal/identity/domain"
	"github.com/hidolabs/hido/internal/identity/http/dto"
	identityUseCase "github.com/hidolabs/hido/internal/identity/usecase"
	customValidation "github.com/hidolabs/hido/internal/validation"
)

// IdentityHandler handles HTTP requests for identity operations.
// Coordinates generate, resolve, sign, and verify operations with DIDManager.
type IdentityHandler struct {
	didManager identityUseCase.DIDManager
	logger     *slog.Logger
}

// NewIdentityHandler creates a new identity handler with required dependencies.
func NewIdentityHandler(
	didManager identityUseCase.DIDManager,
	logger *slog.Logger,
) *IdentityHandler {
	return &IdentityHandler{
		didManager: didManager,
		logger:     logger,
	}
}

// GenerateHandler creates a new agent identity.
// POST /v1/identities
// Returns 201 Created with the DID and its document.
func (h *IdentityHandler) GenerateHandler(c *gin.Context) {
	did, err := h.didManager.Generate(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	document, err := h.didManager.Resolve(c.Request.Context(), did)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.GenerateIdentityResponse{
		DID:      did,
		Document: dto.MapDocumentToResponse(document),
	})
}

// ResolveHandler returns the document for a DID known to this node.
// GET /v1/identities/:did
// Returns 200 OK with the document, 404 if the DID was not generated here.
func (h *IdentityHandler) ResolveHandler(c *gin.Context) {
	did, ok := h.didParam(c)
	if !ok {
		return
	}

	document, err := h.didManager.Resolve(c.Request.Context(), did)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDocumentToResponse(document))
}

// ListHandler returns the DIDs generated by this node.
// GET /v1/identities
func (h *IdentityHandler) ListHandler(c *gin.Context) {
	dids := h.didManager.List(c.Request.Context())

	c.JSON(http.StatusOK, dto.ListIdentitiesResponse{Data: dids})
}

// SignHandler signs a base64-encoded message with the key bound to a DID.
// POST /v1/identities/:did/sign
// Returns 200 OK with the base64-encoded signature.
func (h *IdentityHandler) SignHandler(c *gin.Context) {
	did, ok := h.didParam(c)
	if !ok {
		return
	}

	var req dto.SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	message, err := base64.StdEncoding.DecodeString(req.Message)
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("message must be valid base64"),
			h.logger)
		return
	}

	signature, err := h.didManager.Sign(c.Request.Context(), did, message)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.SignResponse{
		DID:       did,
		Signature: base64.StdEncoding.EncodeToString(signature),
	})
}

// VerifyHandler checks a signature over a message under the DID's public key.
// POST /v1/identities/:did/verify
// Returns 200 OK with valid true or false; a mismatch is not an error.
func (h *IdentityHandler) VerifyHandler(c *gin.Context) {
	did, ok := h.didParam(c)
	if !ok {
		return
	}

	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	message, err := base64.StdEncoding.DecodeString(req.Message)
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("message must be valid base64"),
			h.logger)
		return
	}

	signature, err := base64.StdEncoding.DecodeString(req.Signature)
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("signature must be valid base64"),
			h.logger)
		return
	}

	valid, err := h.didManager.Verify(c.Request.Context(), did, message, signature)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{
		DID:   did,
		Valid: valid,
	})
}

// didParam extracts and validates the DID URL parameter. On failure it writes
// the error response and returns false.
func (h *IdentityHandler) didParam(c *gin.Context) (string, bool) {
	did := c.Param("did")
	if did == "" {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("did is required in URL path"),
			h.logger)
		return "", false
	}

	if err := identityDomain.ValidateDID(did); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return "", false
	}

	return did, true
}
