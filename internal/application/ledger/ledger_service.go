package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/domain/ledger"
	"github.com/warungpos/backend/internal/domain/shared"
)

// Service handles cash ledger CRUD and summarization
type Service struct {
	repo ledger.Repository
}

// NewService creates a new ledger Service
func NewService(repo ledger.Repository) *Service {
	return &Service{repo: repo}
}

// Create posts a manually entered ledger entry
func (s *Service) Create(ctx context.Context, req CreateEntryRequest) (*EntryResponse, error) {
	recordedBy, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	reference, err := buildReference(req.ReferenceKind, req.ReferenceID)
	if err != nil {
		return nil, err
	}

	var txDate time.Time
	if req.TransactionDate != nil {
		txDate = *req.TransactionDate
	}

	entry, err := ledger.NewCashEntry(
		ledger.TransactionType(req.TransactionType),
		req.Amount,
		txDate,
		reference,
		req.Notes,
		recordedBy,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	resp := ToEntryResponse(entry)
	return &resp, nil
}

// GetByID retrieves a ledger entry
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*EntryResponse, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToEntryResponse(entry)
	return &resp, nil
}

// List retrieves ledger entries with optional type and date filters
func (s *Service) List(ctx context.Context, filter ListFilter) ([]EntryResponse, error) {
	entries, err := s.repo.FindAll(ctx, toDomainFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToEntryResponses(entries), nil
}

// Update corrects an existing entry's amount, date or notes. The
// transaction type and reference stay as posted.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateEntryRequest) (*EntryResponse, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entry.Correct(req.Amount, req.TransactionDate, req.Notes); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	resp := ToEntryResponse(entry)
	return &resp, nil
}

// Delete removes a ledger entry
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Summarize aggregates the entries inside the inclusive date range into
// a running balance and unsigned per-type totals.
func (s *Service) Summarize(ctx context.Context, filter SummaryFilter) (*SummaryResponse, error) {
	entries, err := s.repo.FindAll(ctx, ledger.EntryFilter{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	})
	if err != nil {
		return nil, err
	}

	summary := ledger.Summarize(entries)

	resp := &SummaryResponse{
		TotalBalance: summary.TotalBalance,
		ByType:       make(map[string]decimal.Decimal, len(summary.ByType)),
		StartDate:    filter.StartDate,
		EndDate:      filter.EndDate,
		EntryCount:   len(entries),
	}
	for txType, total := range summary.ByType {
		resp.ByType[txType.String()] = total
	}
	return resp, nil
}

func toDomainFilter(filter ListFilter) ledger.EntryFilter {
	domainFilter := ledger.EntryFilter{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	}
	if filter.TransactionType != nil {
		txType := ledger.TransactionType(*filter.TransactionType)
		domainFilter.TransactionType = &txType
	}
	return domainFilter
}

func buildReference(kind string, id *uuid.UUID) (ledger.Reference, error) {
	switch ledger.ReferenceKind(kind) {
	case ledger.ReferenceKindNone:
		if id != nil {
			return ledger.Reference{}, shared.NewValidationError("Reference ID given without a reference kind")
		}
		return ledger.NoReference(), nil
	case ledger.ReferenceKindOrder, ledger.ReferenceKindExpense:
		if id == nil || *id == uuid.Nil {
			return ledger.Reference{}, shared.NewValidationError("Reference kind given without a reference ID")
		}
		return ledger.Reference{Kind: ledger.ReferenceKind(kind), ID: *id}, nil
	}
	return ledger.Reference{}, shared.NewValidationError("Unknown reference kind")
}
