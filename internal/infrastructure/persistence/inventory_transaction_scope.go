package persistence

import (
	"context"

	"gorm.io/gorm"

	appinventory "github.com/warungpos/backend/internal/application/inventory"
	"github.com/warungpos/backend/internal/domain/inventory"
)

// GormInventoryTransactionScope implements the inventory
// TransactionScope using GORM transactions, so a manual adjustment's
// locked read, stock write and movement record form one unit.
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates a new GormInventoryTransactionScope
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinventory.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormInventoryTransactionalRepositories{tx: tx})
	})
}

type gormInventoryTransactionalRepositories struct {
	tx *gorm.DB
}

// ItemRepo returns the inventory item repository scoped to the current transaction
func (r *gormInventoryTransactionalRepositories) ItemRepo() inventory.ItemRepository {
	return NewGormInventoryItemRepository(r.tx)
}

// MovementRepo returns the stock movement repository scoped to the current transaction
func (r *gormInventoryTransactionalRepositories) MovementRepo() inventory.MovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

var _ appinventory.TransactionScope = (*GormInventoryTransactionScope)(nil)
var _ appinventory.TransactionalRepositories = (*gormInventoryTransactionalRepositories)(nil)
