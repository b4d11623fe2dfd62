package order

import (
	"context"

	"github.com/warungpos/backend/internal/domain/inventory"
	"github.com/warungpos/backend/internal/domain/ledger"
	"github.com/warungpos/backend/internal/domain/order"
)

// TransactionScope provides transactional access to the repositories a
// status transition touches. Everything executed within one scope
// commits or rolls back atomically: the status write, the inventory
// deltas, the movement records and the sale posting stand or fall
// together.
type TransactionScope interface {
	// Execute runs fn within one database transaction. An error from fn
	// rolls the whole transaction back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories scoped to the
// current transaction. All of them share the same underlying
// connection.
type TransactionalRepositories interface {
	// OrderRepo returns the order repository scoped to the current transaction
	OrderRepo() order.Repository
	// LedgerRepo returns the cash ledger repository scoped to the current transaction
	LedgerRepo() ledger.Repository
	// InventoryRepo returns the inventory item repository scoped to the current transaction
	InventoryRepo() inventory.ItemRepository
	// RecipeRepo returns the recipe component repository scoped to the current transaction
	RecipeRepo() inventory.RecipeRepository
	// MovementRepo returns the stock movement repository scoped to the current transaction
	MovementRepo() inventory.MovementRepository
}

// NoOpTransactionScope runs scope functions without a real transaction.
// Used in service tests where the repositories are mocks.
type NoOpTransactionScope struct {
	orderRepo     order.Repository
	ledgerRepo    ledger.Repository
	inventoryRepo inventory.ItemRepository
	recipeRepo    inventory.RecipeRepository
	movementRepo  inventory.MovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories.
func NewNoOpTransactionScope(
	orderRepo order.Repository,
	ledgerRepo ledger.Repository,
	inventoryRepo inventory.ItemRepository,
	recipeRepo inventory.RecipeRepository,
	movementRepo inventory.MovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:     orderRepo,
		ledgerRepo:    ledgerRepo,
		inventoryRepo: inventoryRepo,
		recipeRepo:    recipeRepo,
		movementRepo:  movementRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// OrderRepo returns the order repository.
func (s *NoOpTransactionScope) OrderRepo() order.Repository {
	return s.orderRepo
}

// LedgerRepo returns the cash ledger repository.
func (s *NoOpTransactionScope) LedgerRepo() ledger.Repository {
	return s.ledgerRepo
}

// InventoryRepo returns the inventory item repository.
func (s *NoOpTransactionScope) InventoryRepo() inventory.ItemRepository {
	return s.inventoryRepo
}

// RecipeRepo returns the recipe component repository.
func (s *NoOpTransactionScope) RecipeRepo() inventory.RecipeRepository {
	return s.recipeRepo
}

// MovementRepo returns the stock movement repository.
func (s *NoOpTransactionScope) MovementRepo() inventory.MovementRepository {
	return s.movementRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
