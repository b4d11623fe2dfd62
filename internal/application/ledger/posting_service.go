package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warungpos/backend/internal/application/identity"
	"github.com/warungpos/backend/internal/domain/ledger"
	"github.com/warungpos/backend/internal/domain/order"
	"github.com/warungpos/backend/internal/domain/shared"
)

// PostingService is the order/expense to ledger coordinator. It owns
// the rule that a completed order produces exactly one sale entry and
// an expense produces one expense entry, both stamped with the acting
// user. Methods take the ledger repository as a parameter so callers
// can hand in a transaction-scoped instance.
type PostingService struct{}

// NewPostingService creates a PostingService
func NewPostingService() *PostingService {
	return &PostingService{}
}

// PostSaleForOrder posts a sale entry equal to the order's total.
// Posting is idempotent: if a sale entry referencing the order already
// exists, it is returned unchanged and nothing is written.
func (s *PostingService) PostSaleForOrder(ctx context.Context, repo ledger.Repository, o *order.Order) (*ledger.CashEntry, error) {
	recordedBy, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	ref := ledger.OrderReference(o.ID)
	existing, err := repo.FindByReference(ctx, ref, ledger.TransactionTypeSale)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	entry, err := ledger.NewCashEntry(
		ledger.TransactionTypeSale,
		o.TotalAmount,
		time.Time{},
		ref,
		"Sale for order "+o.OrderNumber,
		recordedBy,
	)
	if err != nil {
		return nil, err
	}

	if err := repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// PostExpense posts one expense-typed entry referencing the expense
// record.
func (s *PostingService) PostExpense(ctx context.Context, repo ledger.Repository, expenseID uuid.UUID, amount decimal.Decimal, notes string) (*ledger.CashEntry, error) {
	recordedBy, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if expenseID == uuid.Nil {
		return nil, shared.NewValidationError("Expense ID cannot be empty")
	}

	entry, err := ledger.NewCashEntry(
		ledger.TransactionTypeExpense,
		amount,
		time.Time{},
		ledger.ExpenseReference(expenseID),
		notes,
		recordedBy,
	)
	if err != nil {
		return nil, err
	}

	if err := repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// PostPayroll posts one expense-typed entry referencing the payroll
// entry. Idempotent on the payroll reference so a retried settlement
// cannot double-post.
func (s *PostingService) PostPayroll(ctx context.Context, repo ledger.Repository, payrollEntryID uuid.UUID, amount decimal.Decimal, notes string) (*ledger.CashEntry, error) {
	recordedBy, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if payrollEntryID == uuid.Nil {
		return nil, shared.NewValidationError("Payroll entry ID cannot be empty")
	}

	ref := ledger.PayrollReference(payrollEntryID)
	existing, err := repo.FindByReference(ctx, ref, ledger.TransactionTypeExpense)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	entry, err := ledger.NewCashEntry(
		ledger.TransactionTypeExpense,
		amount,
		time.Time{},
		ref,
		notes,
		recordedBy,
	)
	if err != nil {
		return nil, err
	}

	if err := repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// requireActor resolves recorded_by from the acting-user context.
// Missing user context fails before anything is written.
func requireActor(ctx context.Context) (uuid.UUID, error) {
	userID, ok := identity.ActorFrom(ctx)
	if !ok {
		return uuid.Nil, shared.NewValidationError("No acting user in request context")
	}
	return userID, nil
}

func isNotFound(err error) bool {
	var de *shared.DomainError
	return errors.As(err, &de) && de.Code == shared.CodeNotFound
}
