package persistence

import (
	"context"

	"gorm.io/gorm"

	apppayroll "github.com/warungpos/backend/internal/application/payroll"
	"github.com/warungpos/backend/internal/domain/ledger"
	"github.com/warungpos/backend/internal/domain/payroll"
)

// GormPayrollTransactionScope implements the payroll TransactionScope
// using GORM transactions. The paid-status write and the ledger posting
// commit or roll back as one unit.
type GormPayrollTransactionScope struct {
	db *gorm.DB
}

// NewGormPayrollTransactionScope creates a new GormPayrollTransactionScope
func NewGormPayrollTransactionScope(db *gorm.DB) *GormPayrollTransactionScope {
	return &GormPayrollTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormPayrollTransactionScope) Execute(ctx context.Context, fn func(repos apppayroll.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormPayrollTransactionalRepositories{tx: tx})
	})
}

type gormPayrollTransactionalRepositories struct {
	tx *gorm.DB
}

// EntryRepo returns the payroll entry repository scoped to the current transaction
func (r *gormPayrollTransactionalRepositories) EntryRepo() payroll.EntryRepository {
	return NewGormPayrollEntryRepository(r.tx)
}

// LedgerRepo returns the cash ledger repository scoped to the current transaction
func (r *gormPayrollTransactionalRepositories) LedgerRepo() ledger.Repository {
	return NewGormCashEntryRepository(r.tx)
}

var _ apppayroll.TransactionScope = (*GormPayrollTransactionScope)(nil)
var _ apppayroll.TransactionalRepositories = (*gormPayrollTransactionalRepositories)(nil)
