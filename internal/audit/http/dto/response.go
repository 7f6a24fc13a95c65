package dto

import (
	"time"

	auditDomain "github.com/hidolabs/hido/internal/audit/domain"
	auditUseCase "github.com/hidolabs/hido/internal/audit/usecase"
)

// RecordEntryResponse is returned after an entry is appended to the ledger.
type RecordEntryResponse struct {
	EntryID     string `json:"entryId"`
	BackendType string `json:"backendType"`
}

// MapReceiptToResponse converts a record receipt to its API representation.
func MapReceiptToResponse(receipt *auditUseCase.RecordReceipt) RecordEntryResponse {
	return RecordEntryResponse{
		EntryID:     receipt.EntryID,
		BackendType: receipt.BackendType,
	}
}

// EntryResponse represents a recorded audit entry in API responses.
type EntryResponse struct {
	ID          string    `json:"id"`
	Actor       string    `json:"actor"`
	Action      string    `json:"action"`
	Target      string    `json:"target"`
	ContentHash string    `json:"contentHash"`
	EntryID     string    `json:"entryId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListEntriesResponse represents a filtered page of audit entries.
type ListEntriesResponse struct {
	Data []EntryResponse `json:"data"`
}

// MapEntriesToListResponse converts domain entries to a list response.
func MapEntriesToListResponse(entries []*auditDomain.Entry) ListEntriesResponse {
	data := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		data = append(data, EntryResponse{
			ID:          entry.ID.String(),
			Actor:       entry.Actor,
			Action:      entry.Action,
			Target:      entry.Target,
			ContentHash: entry.ContentHash,
			EntryID:     entry.EntryID,
			CreatedAt:   entry.CreatedAt,
		})
	}

	return ListEntriesResponse{
		Data: data,
	}
}
