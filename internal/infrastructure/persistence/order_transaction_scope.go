package persistence

import (
	"context"

	"gorm.io/gorm"

	apporder "github.com/warungpos/backend/internal/application/order"
	"github.com/warungpos/backend/internal/domain/inventory"
	"github.com/warungpos/backend/internal/domain/ledger"
	"github.com/warungpos/backend/internal/domain/order"
)

// GormTransactionScope implements the order TransactionScope using GORM
// transactions. A status transition's order write, inventory deltas,
// movement records and sale posting commit or roll back as one unit.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apporder.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides repositories bound to one transaction
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// OrderRepo returns the order repository scoped to the current transaction
func (r *gormTransactionalRepositories) OrderRepo() order.Repository {
	return NewGormOrderRepository(r.tx)
}

// LedgerRepo returns the cash ledger repository scoped to the current transaction
func (r *gormTransactionalRepositories) LedgerRepo() ledger.Repository {
	return NewGormCashEntryRepository(r.tx)
}

// InventoryRepo returns the inventory item repository scoped to the current transaction
func (r *gormTransactionalRepositories) InventoryRepo() inventory.ItemRepository {
	return NewGormInventoryItemRepository(r.tx)
}

// RecipeRepo returns the recipe component repository scoped to the current transaction
func (r *gormTransactionalRepositories) RecipeRepo() inventory.RecipeRepository {
	return NewGormRecipeRepository(r.tx)
}

// MovementRepo returns the stock movement repository scoped to the current transaction
func (r *gormTransactionalRepositories) MovementRepo() inventory.MovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

var _ apporder.TransactionScope = (*GormTransactionScope)(nil)
var _ apporder.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
