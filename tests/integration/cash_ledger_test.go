package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	financeapp "github.com/warungpos/backend/internal/application/finance"
	identityapp "github.com/warungpos/backend/internal/application/identity"
	ledgerapp "github.com/warungpos/backend/internal/application/ledger"
	"github.com/warungpos/backend/internal/infrastructure/persistence"
)

func TestCashLedgerSummary(t *testing.T) {
	tdb := NewTestDB(t)
	cashRepo := persistence.NewGormCashEntryRepository(tdb.DB)
	ledgerSvc := ledgerapp.NewService(cashRepo)

	ctx := identityapp.WithActor(context.Background(), uuid.New())

	post := func(txType, amount string) {
		t.Helper()
		_, err := ledgerSvc.Create(ctx, ledgerapp.CreateEntryRequest{
			TransactionType: txType,
			Amount:          decimal.RequireFromString(amount),
		})
		require.NoError(t, err)
	}

	post("opening", "500000")
	post("sale", "100000")
	post("sale", "75000")
	post("expense", "50000")

	summary, err := ledgerSvc.Summarize(ctx, ledgerapp.SummaryFilter{})
	require.NoError(t, err)

	// 500000 + 100000 + 75000 - 50000
	assert.True(t, decimal.RequireFromString("625000").Equal(summary.TotalBalance),
		"expected 625000, got %s", summary.TotalBalance)
	assert.Equal(t, 4, summary.EntryCount)
	assert.True(t, decimal.RequireFromString("175000").Equal(summary.ByType["sale"]))
	assert.True(t, decimal.RequireFromString("50000").Equal(summary.ByType["expense"]))
}

func TestExpensePostsToLedger(t *testing.T) {
	tdb := NewTestDB(t)
	cashRepo := persistence.NewGormCashEntryRepository(tdb.DB)
	expenseRepo := persistence.NewGormExpenseRepository(tdb.DB)
	expenseSvc := financeapp.NewExpenseService(expenseRepo, cashRepo, ledgerapp.NewPostingService())
	ledgerSvc := ledgerapp.NewService(cashRepo)

	ctx := identityapp.WithActor(context.Background(), uuid.New())

	resp, err := expenseSvc.Create(ctx, financeapp.CreateExpenseRequest{
		Amount:       decimal.RequireFromString("250000"),
		Category:     "rent",
		Description:  "Monthly stall rent",
		PostToLedger: true,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.LedgerEntry)

	entry, err := ledgerSvc.GetByID(ctx, *resp.LedgerEntry)
	require.NoError(t, err)
	assert.Equal(t, "expense", entry.TransactionType)
	assert.Equal(t, "expense", entry.ReferenceKind)
	assert.Equal(t, resp.ID, *entry.ReferenceID)
	// Expense entries subtract from the balance
	assert.True(t, decimal.RequireFromString("-250000").Equal(entry.SignedAmount))
}
