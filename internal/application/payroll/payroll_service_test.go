package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appidentity "github.com/warungpos/backend/internal/application/identity"
	appledger "github.com/warungpos/backend/internal/application/ledger"
	"github.com/warungpos/backend/internal/domain/ledger"
	"github.com/warungpos/backend/internal/domain/payroll"
	"github.com/warungpos/backend/internal/domain/shared"
)

// In-memory fakes. Settlement is about what gets written and in what
// order, which call-expectation mocks express poorly.

type memEmployeeRepo struct {
	employees map[uuid.UUID]*payroll.Employee
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{employees: make(map[uuid.UUID]*payroll.Employee)}
}

func (r *memEmployeeRepo) Create(_ context.Context, e *payroll.Employee) error {
	r.employees[e.ID] = e
	return nil
}

func (r *memEmployeeRepo) FindByID(_ context.Context, id uuid.UUID) (*payroll.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, shared.NewNotFoundError("Employee not found")
	}
	copied := *e
	return &copied, nil
}

func (r *memEmployeeRepo) FindAll(_ context.Context, activeOnly bool, _ shared.Filter) ([]*payroll.Employee, error) {
	var out []*payroll.Employee
	for _, e := range r.employees {
		if activeOnly && !e.IsActive {
			continue
		}
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memEmployeeRepo) Save(_ context.Context, e *payroll.Employee) error {
	copied := *e
	r.employees[e.ID] = &copied
	return nil
}

func (r *memEmployeeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.employees, id)
	return nil
}

type memEntryRepo struct {
	entries map[uuid.UUID]*payroll.PayrollEntry
	updates int
}

func newMemEntryRepo() *memEntryRepo {
	return &memEntryRepo{entries: make(map[uuid.UUID]*payroll.PayrollEntry)}
}

func (r *memEntryRepo) Create(_ context.Context, e *payroll.PayrollEntry) error {
	copied := *e
	r.entries[e.ID] = &copied
	return nil
}

func (r *memEntryRepo) FindByID(_ context.Context, id uuid.UUID) (*payroll.PayrollEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, shared.NewNotFoundError("Payroll entry not found")
	}
	copied := *e
	return &copied, nil
}

func (r *memEntryRepo) FindAll(_ context.Context, _ payroll.EntryFilter, _ shared.Filter) ([]*payroll.PayrollEntry, error) {
	var out []*payroll.PayrollEntry
	for _, e := range r.entries {
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memEntryRepo) Update(_ context.Context, e *payroll.PayrollEntry) error {
	r.updates++
	copied := *e
	r.entries[e.ID] = &copied
	return nil
}

func (r *memEntryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.entries, id)
	return nil
}

type memLedgerRepo struct {
	entries   map[uuid.UUID]*ledger.CashEntry
	createErr error
}

func newMemLedgerRepo() *memLedgerRepo {
	return &memLedgerRepo{entries: make(map[uuid.UUID]*ledger.CashEntry)}
}

func (r *memLedgerRepo) Create(_ context.Context, e *ledger.CashEntry) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *e
	r.entries[e.ID] = &copied
	return nil
}

func (r *memLedgerRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.CashEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, shared.NewNotFoundError("Ledger entry not found")
	}
	copied := *e
	return &copied, nil
}

func (r *memLedgerRepo) FindByReference(_ context.Context, ref ledger.Reference, txType ledger.TransactionType) (*ledger.CashEntry, error) {
	for _, e := range r.entries {
		if e.Reference == ref && e.TransactionType == txType {
			copied := *e
			return &copied, nil
		}
	}
	return nil, shared.NewNotFoundError("Ledger entry not found")
}

func (r *memLedgerRepo) FindAll(_ context.Context, _ ledger.EntryFilter) ([]ledger.CashEntry, error) {
	var out []ledger.CashEntry
	for _, e := range r.entries {
		out = append(out, *e)
	}
	return out, nil
}

func (r *memLedgerRepo) Update(_ context.Context, e *ledger.CashEntry) error {
	copied := *e
	r.entries[e.ID] = &copied
	return nil
}

func (r *memLedgerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.entries, id)
	return nil
}

type serviceFixture struct {
	service   *Service
	employees *memEmployeeRepo
	entries   *memEntryRepo
	cash      *memLedgerRepo
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	employees := newMemEmployeeRepo()
	entries := newMemEntryRepo()
	cash := newMemLedgerRepo()
	scope := NewNoOpTransactionScope(entries, cash)
	return &serviceFixture{
		service:   NewService(employees, entries, scope, appledger.NewPostingService()),
		employees: employees,
		entries:   entries,
		cash:      cash,
	}
}

func (f *serviceFixture) pendingEntry(t *testing.T) *payroll.PayrollEntry {
	t.Helper()
	employee, err := payroll.NewEmployee("Sari", "cook", "081234", decimal.Zero, decimal.NewFromInt(1800000), time.Time{})
	require.NoError(t, err)
	require.NoError(t, f.employees.Create(context.Background(), employee))

	entry, err := payroll.NewPayrollEntry(employee.ID,
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		decimal.Zero, decimal.NewFromInt(1800000), "")
	require.NoError(t, err)
	require.NoError(t, f.entries.Create(context.Background(), entry))
	return entry
}

func actorContext() context.Context {
	return appidentity.WithActor(context.Background(), uuid.New())
}

func TestServiceMarkPaid(t *testing.T) {
	t.Run("settles the entry and posts a payroll-referenced expense", func(t *testing.T) {
		f := newServiceFixture(t)
		entry := f.pendingEntry(t)

		resp, err := f.service.MarkPaid(actorContext(), entry.ID, MarkPaidRequest{PostToLedger: true})
		require.NoError(t, err)
		assert.Equal(t, "paid", resp.Status)

		stored, err := f.entries.FindByID(context.Background(), entry.ID)
		require.NoError(t, err)
		assert.Equal(t, payroll.EntryStatusPaid, stored.Status)

		posted, err := f.cash.FindByReference(context.Background(),
			ledger.PayrollReference(entry.ID), ledger.TransactionTypeExpense)
		require.NoError(t, err)
		assert.True(t, posted.SignedAmount().Equal(decimal.NewFromInt(-1800000)))
	})

	t.Run("missing acting user fails before any write", func(t *testing.T) {
		f := newServiceFixture(t)
		entry := f.pendingEntry(t)

		_, err := f.service.MarkPaid(context.Background(), entry.ID, MarkPaidRequest{PostToLedger: true})
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))

		stored, err := f.entries.FindByID(context.Background(), entry.ID)
		require.NoError(t, err)
		assert.Equal(t, payroll.EntryStatusPending, stored.Status)
		assert.Equal(t, 0, f.entries.updates)
	})

	t.Run("posting failure surfaces so the settlement rolls back", func(t *testing.T) {
		f := newServiceFixture(t)
		entry := f.pendingEntry(t)
		f.cash.createErr = shared.NewPersistenceError("Database operation timed out")

		_, err := f.service.MarkPaid(actorContext(), entry.ID, MarkPaidRequest{PostToLedger: true})
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodePersistence))
	})

	t.Run("settles without posting when not requested", func(t *testing.T) {
		f := newServiceFixture(t)
		entry := f.pendingEntry(t)

		resp, err := f.service.MarkPaid(context.Background(), entry.ID, MarkPaidRequest{})
		require.NoError(t, err)
		assert.Equal(t, "paid", resp.Status)
		assert.Empty(t, f.cash.entries)
	})

	t.Run("rejects settling an already paid entry", func(t *testing.T) {
		f := newServiceFixture(t)
		entry := f.pendingEntry(t)

		_, err := f.service.MarkPaid(actorContext(), entry.ID, MarkPaidRequest{PostToLedger: true})
		require.NoError(t, err)

		_, err = f.service.MarkPaid(actorContext(), entry.ID, MarkPaidRequest{PostToLedger: true})
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeInvalidTransition))
	})
}
