package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "github.com/hidolabs/hido/internal/errors"
)

// AnchorClient talks to the external anchoring service that gives the
// blockchain backend its durability. Every call is bounded by the configured
// timeout; a slow or unreachable service surfaces as ErrBackendUnavailable
// instead of hanging the append path.
type AnchorClient struct {
	baseURL string
	client  *http.Client
}

// anchorRequest is the body posted for each block hash.
type anchorRequest struct {
	Hash string `json:"hash"`
}

// anchorResponse carries the transaction reference minted by the service.
type anchorResponse struct {
	TxRef string `json:"txRef"`
}

// NewAnchorClient creates a client for the anchoring service.
func NewAnchorClient(baseURL string, timeout time.Duration) *AnchorClient {
	return &AnchorClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Health checks that the anchoring service is reachable.
func (a *AnchorClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/health", nil)
	if err != nil {
		return apperrors.Wrap(err, "failed to build anchor health request")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrBackendUnavailable, err.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return apperrors.Wrap(
			apperrors.ErrBackendUnavailable,
			fmt.Sprintf("anchor health check returned status %d", resp.StatusCode),
		)
	}

	return nil
}

// Anchor submits a block hash and returns the opaque transaction reference
// assigned by the service.
func (a *AnchorClient) Anchor(ctx context.Context, hash string) (string, error) {
	body, err := json.Marshal(anchorRequest{Hash: hash})
	if err != nil {
		return "", apperrors.Wrap(err, "failed to marshal anchor request")
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		a.baseURL+"/v1/anchors",
		bytes.NewReader(body),
	)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to build anchor request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrBackendUnavailable, err.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", apperrors.Wrap(
			apperrors.ErrBackendUnavailable,
			fmt.Sprintf("anchor service returned status %d", resp.StatusCode),
		)
	}

	var anchorResp anchorResponse
	if err := json.NewDecoder(resp.Body).Decode(&anchorResp); err != nil {
		return "", apperrors.Wrap(apperrors.ErrBackendUnavailable, "failed to decode anchor response")
	}

	return anchorResp.TxRef, nil
}
