package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	appledger "github.com/warungpos/backend/internal/application/ledger"
	"github.com/warungpos/backend/internal/domain/finance"
	"github.com/warungpos/backend/internal/domain/ledger"
	"github.com/warungpos/backend/internal/domain/shared"
)

// ExpenseService handles expense records and their optional ledger
// postings.
type ExpenseService struct {
	expenses finance.Repository
	entries  ledger.Repository
	posting  *appledger.PostingService
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(
	expenses finance.Repository,
	entries ledger.Repository,
	posting *appledger.PostingService,
) *ExpenseService {
	return &ExpenseService{
		expenses: expenses,
		entries:  entries,
		posting:  posting,
	}
}

// Create records an expense and optionally posts the matching
// expense-typed cash entry through the coordinator.
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	expense, err := finance.NewExpense(date, req.Amount, req.Category, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}

	resp := ToExpenseResponse(expense)

	if req.PostToLedger {
		entry, err := s.posting.PostExpense(ctx, s.entries, expense.ID, expense.Amount, expense.Description)
		if err != nil {
			return nil, err
		}
		entryID := entry.ID
		resp.LedgerEntry = &entryID
	}

	return &resp, nil
}

// GetByID retrieves an expense record
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// List retrieves expenses with optional category and date filters
func (s *ExpenseService) List(ctx context.Context, filter ListFilter) ([]ExpenseResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	domainFilter := finance.ExpenseFilter{
		Category:  filter.Category,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	}
	page := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "date",
		OrderDir: "desc",
	}

	expenses, err := s.expenses.FindAll(ctx, domainFilter, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.expenses.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToExpenseResponses(expenses), total, nil
}

// Update corrects an expense record. The already-posted ledger entry,
// if any, is corrected separately through the ledger endpoints.
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := expense.Update(req.Amount, req.Category, req.Description); err != nil {
		return nil, err
	}

	if err := s.expenses.Update(ctx, expense); err != nil {
		return nil, err
	}

	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// Delete removes an expense record
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.expenses.FindByID(ctx, id); err != nil {
		return err
	}
	return s.expenses.Delete(ctx, id)
}
