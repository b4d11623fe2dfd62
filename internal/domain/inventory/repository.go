package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/warungpos/backend/internal/domain/shared"
)

// ItemRepository persists inventory items. FindByIDForUpdate acquires a
// row lock so deductions for different orders competing for the same
// item serialize instead of losing updates; it must be called inside a
// transaction.
type ItemRepository interface {
	Create(ctx context.Context, item *InventoryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*InventoryItem, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]InventoryItem, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, item *InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecipeRepository reads and maintains product recipes
type RecipeRepository interface {
	Create(ctx context.Context, rc *RecipeComponent) error
	FindByID(ctx context.Context, id uuid.UUID) (*RecipeComponent, error)
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]RecipeComponent, error)
	FindAll(ctx context.Context) ([]RecipeComponent, error)
	Save(ctx context.Context, rc *RecipeComponent) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MovementRepository appends and reads stock movement records
type MovementRepository interface {
	Create(ctx context.Context, m *StockMovement) error
	FindByOrder(ctx context.Context, orderID uuid.UUID, kind MovementKind) ([]StockMovement, error)
}
