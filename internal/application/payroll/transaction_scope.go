package payroll

import (
	"context"

	"github.com/warungpos/backend/internal/domain/ledger"
	"github.com/warungpos/backend/internal/domain/payroll"
)

// TransactionScope provides transactional access to the repositories a
// payroll settlement touches. The status write and the ledger posting
// commit or roll back together.
type TransactionScope interface {
	// Execute runs fn within one database transaction. An error from fn
	// rolls the whole transaction back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories scoped to the
// current transaction.
type TransactionalRepositories interface {
	// EntryRepo returns the payroll entry repository scoped to the current transaction
	EntryRepo() payroll.EntryRepository
	// LedgerRepo returns the cash ledger repository scoped to the current transaction
	LedgerRepo() ledger.Repository
}

// NoOpTransactionScope runs scope functions without a real transaction.
// Used in service tests where the repositories are fakes.
type NoOpTransactionScope struct {
	entryRepo  payroll.EntryRepository
	ledgerRepo ledger.Repository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories.
func NewNoOpTransactionScope(entryRepo payroll.EntryRepository, ledgerRepo ledger.Repository) *NoOpTransactionScope {
	return &NoOpTransactionScope{entryRepo: entryRepo, ledgerRepo: ledgerRepo}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// EntryRepo returns the payroll entry repository.
func (s *NoOpTransactionScope) EntryRepo() payroll.EntryRepository {
	return s.entryRepo
}

// LedgerRepo returns the cash ledger repository.
func (s *NoOpTransactionScope) LedgerRepo() ledger.Repository {
	return s.ledgerRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
