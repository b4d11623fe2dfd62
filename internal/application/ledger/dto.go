package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/domain/ledger"
)

// CreateEntryRequest represents a request to post a ledger entry
type CreateEntryRequest struct {
	TransactionType string           `json:"transaction_type" binding:"required,oneof=opening closing sale expense adjustment"`
	Amount          decimal.Decimal  `json:"amount" binding:"required"`
	TransactionDate *time.Time       `json:"transaction_date"`
	ReferenceKind   string           `json:"reference_kind" binding:"omitempty,oneof=order expense"`
	ReferenceID     *uuid.UUID       `json:"reference_id"`
	Notes           string           `json:"notes" binding:"max=500"`
}

// UpdateEntryRequest represents a correction to an existing entry.
// The transaction type and reference cannot be changed.
type UpdateEntryRequest struct {
	Amount          *decimal.Decimal `json:"amount"`
	TransactionDate *time.Time       `json:"transaction_date"`
	Notes           *string          `json:"notes"`
}

// ListFilter represents filter options for the ledger entry list
type ListFilter struct {
	TransactionType *string    `form:"transaction_type" binding:"omitempty,oneof=opening closing sale expense adjustment"`
	StartDate       *time.Time `form:"start_date"`
	EndDate         *time.Time `form:"end_date"`
}

// SummaryFilter represents the date range for a ledger summary
type SummaryFilter struct {
	StartDate *time.Time `form:"start_date"`
	EndDate   *time.Time `form:"end_date"`
}

// EntryResponse represents a ledger entry in API responses
type EntryResponse struct {
	ID              uuid.UUID       `json:"id"`
	TransactionDate time.Time       `json:"transaction_date"`
	TransactionType string          `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	SignedAmount    decimal.Decimal `json:"signed_amount"`
	ReferenceKind   string          `json:"reference_kind,omitempty"`
	ReferenceID     *uuid.UUID      `json:"reference_id,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	RecordedBy      uuid.UUID       `json:"recorded_by"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// SummaryResponse represents an aggregated ledger view
type SummaryResponse struct {
	TotalBalance decimal.Decimal            `json:"total_balance"`
	ByType       map[string]decimal.Decimal `json:"by_type"`
	StartDate    *time.Time                 `json:"start_date,omitempty"`
	EndDate      *time.Time                 `json:"end_date,omitempty"`
	EntryCount   int                        `json:"entry_count"`
}

// ToEntryResponse maps a cash entry onto its API representation
func ToEntryResponse(e *ledger.CashEntry) EntryResponse {
	resp := EntryResponse{
		ID:              e.ID,
		TransactionDate: e.TransactionDate,
		TransactionType: e.TransactionType.String(),
		Amount:          e.Amount,
		SignedAmount:    e.SignedAmount(),
		Notes:           e.Notes,
		RecordedBy:      e.RecordedBy,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if !e.Reference.IsZero() {
		resp.ReferenceKind = string(e.Reference.Kind)
		refID := e.Reference.ID
		resp.ReferenceID = &refID
	}
	return resp
}

// ToEntryResponses maps a slice of cash entries onto API representations
func ToEntryResponses(entries []ledger.CashEntry) []EntryResponse {
	responses := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, ToEntryResponse(&entries[i]))
	}
	return responses
}
