package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appidentity "github.com/warungpos/backend/internal/application/identity"
	"github.com/warungpos/backend/internal/domain/ledger"
	"github.com/warungpos/backend/internal/domain/order"
	"github.com/warungpos/backend/internal/domain/shared"
)

// MockRepository is a mock implementation of ledger.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, e *ledger.CashEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.CashEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.CashEntry), args.Error(1)
}

func (m *MockRepository) FindByReference(ctx context.Context, ref ledger.Reference, txType ledger.TransactionType) (*ledger.CashEntry, error) {
	args := m.Called(ctx, ref, txType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.CashEntry), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context, filter ledger.EntryFilter) ([]ledger.CashEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.CashEntry), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, e *ledger.CashEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func actorContext() context.Context {
	return appidentity.WithActor(context.Background(), uuid.New())
}

func TestPostSaleForOrder(t *testing.T) {
	newCookedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder("ORD-20260115-a1b2c3d4", "dine_in", decimal.NewFromInt(45000))
		require.NoError(t, err)
		return o
	}

	t.Run("posts one sale entry for the order total", func(t *testing.T) {
		repo := new(MockRepository)
		o := newCookedOrder(t)

		repo.On("FindByReference", mock.Anything, ledger.OrderReference(o.ID), ledger.TransactionTypeSale).
			Return(nil, shared.NewNotFoundError("no entry")).Once()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(e *ledger.CashEntry) bool {
			return e.TransactionType == ledger.TransactionTypeSale &&
				e.Amount.Equal(decimal.NewFromInt(45000)) &&
				e.Reference == ledger.OrderReference(o.ID)
		})).Return(nil).Once()

		entry, err := NewPostingService().PostSaleForOrder(actorContext(), repo, o)
		require.NoError(t, err)
		assert.Equal(t, ledger.TransactionTypeSale, entry.TransactionType)
		repo.AssertExpectations(t)
	})

	t.Run("second call returns the existing entry without writing", func(t *testing.T) {
		repo := new(MockRepository)
		o := newCookedOrder(t)

		existing, err := ledger.NewCashEntry(ledger.TransactionTypeSale, o.TotalAmount,
			time.Now(), ledger.OrderReference(o.ID), "", uuid.New())
		require.NoError(t, err)

		repo.On("FindByReference", mock.Anything, ledger.OrderReference(o.ID), ledger.TransactionTypeSale).
			Return(existing, nil).Once()

		entry, err := NewPostingService().PostSaleForOrder(actorContext(), repo, o)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, entry.ID)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("fails without an acting user before any lookup", func(t *testing.T) {
		repo := new(MockRepository)
		o := newCookedOrder(t)

		_, err := NewPostingService().PostSaleForOrder(context.Background(), repo, o)
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
		repo.AssertNotCalled(t, "FindByReference", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPostExpense(t *testing.T) {
	t.Run("posts an expense entry referencing the record", func(t *testing.T) {
		repo := new(MockRepository)
		expenseID := uuid.New()

		repo.On("Create", mock.Anything, mock.MatchedBy(func(e *ledger.CashEntry) bool {
			return e.TransactionType == ledger.TransactionTypeExpense &&
				e.Reference == ledger.ExpenseReference(expenseID)
		})).Return(nil).Once()

		entry, err := NewPostingService().PostExpense(actorContext(), repo, expenseID,
			decimal.NewFromInt(50000), "gas refill")
		require.NoError(t, err)
		assert.True(t, entry.SignedAmount().Equal(decimal.NewFromInt(-50000)))
		repo.AssertExpectations(t)
	})

	t.Run("rejects a nil expense id", func(t *testing.T) {
		repo := new(MockRepository)
		_, err := NewPostingService().PostExpense(actorContext(), repo, uuid.Nil,
			decimal.NewFromInt(100), "")
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
	})
}

func TestPostPayroll(t *testing.T) {
	t.Run("posts an expense entry referencing the payroll entry", func(t *testing.T) {
		repo := new(MockRepository)
		entryID := uuid.New()

		repo.On("FindByReference", mock.Anything, ledger.PayrollReference(entryID), ledger.TransactionTypeExpense).
			Return(nil, shared.NewNotFoundError("no entry")).Once()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(e *ledger.CashEntry) bool {
			return e.TransactionType == ledger.TransactionTypeExpense &&
				e.Reference == ledger.PayrollReference(entryID)
		})).Return(nil).Once()

		entry, err := NewPostingService().PostPayroll(actorContext(), repo, entryID,
			decimal.NewFromInt(1800000), "Payroll for Sari (2026-08-01 to 2026-08-31)")
		require.NoError(t, err)
		assert.True(t, entry.SignedAmount().Equal(decimal.NewFromInt(-1800000)))
		repo.AssertExpectations(t)
	})

	t.Run("retried settlement returns the existing entry without writing", func(t *testing.T) {
		repo := new(MockRepository)
		entryID := uuid.New()

		existing, err := ledger.NewCashEntry(ledger.TransactionTypeExpense,
			decimal.NewFromInt(1800000), time.Now(), ledger.PayrollReference(entryID), "", uuid.New())
		require.NoError(t, err)

		repo.On("FindByReference", mock.Anything, ledger.PayrollReference(entryID), ledger.TransactionTypeExpense).
			Return(existing, nil).Once()

		entry, err := NewPostingService().PostPayroll(actorContext(), repo, entryID,
			decimal.NewFromInt(1800000), "")
		require.NoError(t, err)
		assert.Equal(t, existing.ID, entry.ID)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("fails without an acting user before any lookup", func(t *testing.T) {
		repo := new(MockRepository)
		_, err := NewPostingService().PostPayroll(context.Background(), repo, uuid.New(),
			decimal.NewFromInt(100), "")
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
		repo.AssertNotCalled(t, "FindByReference", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestServiceCreate(t *testing.T) {
	t.Run("stamps recorded_by from the acting user", func(t *testing.T) {
		repo := new(MockRepository)
		userID := uuid.New()
		ctx := appidentity.WithActor(context.Background(), userID)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(e *ledger.CashEntry) bool {
			return e.RecordedBy == userID && e.TransactionType == ledger.TransactionTypeOpening
		})).Return(nil).Once()

		resp, err := NewService(repo).Create(ctx, CreateEntryRequest{
			TransactionType: "opening",
			Amount:          decimal.NewFromInt(500000),
		})
		require.NoError(t, err)
		assert.Equal(t, userID, resp.RecordedBy)
		repo.AssertExpectations(t)
	})

	t.Run("fails without an acting user", func(t *testing.T) {
		repo := new(MockRepository)
		_, err := NewService(repo).Create(context.Background(), CreateEntryRequest{
			TransactionType: "opening",
			Amount:          decimal.NewFromInt(1),
		})
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
	})

	t.Run("rejects a reference id without a kind", func(t *testing.T) {
		repo := new(MockRepository)
		id := uuid.New()
		_, err := NewService(repo).Create(actorContext(), CreateEntryRequest{
			TransactionType: "sale",
			Amount:          decimal.NewFromInt(100),
			ReferenceID:     &id,
		})
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
	})
}

func TestServiceUpdate(t *testing.T) {
	t.Run("corrects amount and notes but never the type", func(t *testing.T) {
		repo := new(MockRepository)
		entry, err := ledger.NewCashEntry(ledger.TransactionTypeSale, decimal.NewFromInt(500),
			time.Now(), ledger.OrderReference(uuid.New()), "original", uuid.New())
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, entry.ID).Return(entry, nil).Once()
		repo.On("Update", mock.Anything, entry).Return(nil).Once()

		amount := decimal.NewFromInt(550)
		notes := "corrected"
		resp, err := NewService(repo).Update(context.Background(), entry.ID, UpdateEntryRequest{
			Amount: &amount,
			Notes:  &notes,
		})
		require.NoError(t, err)
		assert.True(t, resp.Amount.Equal(amount))
		assert.Equal(t, "sale", resp.TransactionType)
		assert.Equal(t, "corrected", resp.Notes)
	})
}

func TestServiceSummarize(t *testing.T) {
	mustEntry := func(t *testing.T, txType ledger.TransactionType, amount int64) ledger.CashEntry {
		t.Helper()
		entry, err := ledger.NewCashEntry(txType, decimal.NewFromInt(amount),
			time.Now(), ledger.NoReference(), "", uuid.New())
		require.NoError(t, err)
		return *entry
	}

	t.Run("returns signed balance and unsigned type totals", func(t *testing.T) {
		repo := new(MockRepository)
		entries := []ledger.CashEntry{
			mustEntry(t, ledger.TransactionTypeOpening, 1000),
			mustEntry(t, ledger.TransactionTypeSale, 500),
			mustEntry(t, ledger.TransactionTypeExpense, 200),
			mustEntry(t, ledger.TransactionTypeClosing, 300),
			mustEntry(t, ledger.TransactionTypeAdjustment, 50),
		}
		repo.On("FindAll", mock.Anything, mock.Anything).Return(entries, nil).Once()

		resp, err := NewService(repo).Summarize(context.Background(), SummaryFilter{})
		require.NoError(t, err)

		assert.True(t, resp.TotalBalance.Equal(decimal.NewFromInt(1050)))
		assert.True(t, resp.ByType["expense"].Equal(decimal.NewFromInt(200)))
		assert.True(t, resp.ByType["closing"].Equal(decimal.NewFromInt(300)))
		assert.Equal(t, 5, resp.EntryCount)
	})

	t.Run("passes the date range through to the repository", func(t *testing.T) {
		repo := new(MockRepository)
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

		repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f ledger.EntryFilter) bool {
			return f.StartDate != nil && f.StartDate.Equal(start) &&
				f.EndDate != nil && f.EndDate.Equal(end) && f.TransactionType == nil
		})).Return([]ledger.CashEntry{}, nil).Once()

		resp, err := NewService(repo).Summarize(context.Background(), SummaryFilter{
			StartDate: &start,
			EndDate:   &end,
		})
		require.NoError(t, err)
		assert.True(t, resp.TotalBalance.IsZero())
		repo.AssertExpectations(t)
	})
}
