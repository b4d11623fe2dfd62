package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungpos/backend/internal/domain/inventory"
	"github.com/warungpos/backend/internal/domain/shared"
)

// lockTrackingItemRepo wraps memItemRepo to record which reads took the
// row lock.
type lockTrackingItemRepo struct {
	*memItemRepo
	lockedReads int
}

func (r *lockTrackingItemRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	r.lockedReads++
	return r.memItemRepo.FindByIDForUpdate(ctx, id)
}

func TestServiceAdjustStock(t *testing.T) {
	newFixture := func(t *testing.T, stock string) (*Service, *lockTrackingItemRepo, *memMovementRepo, *inventory.InventoryItem) {
		t.Helper()
		items := &lockTrackingItemRepo{memItemRepo: newMemItemRepo()}
		movements := &memMovementRepo{}

		item, err := inventory.NewInventoryItem("sugar", "kg", "staples",
			decimal.RequireFromString(stock),
			decimal.RequireFromString("1"),
			decimal.RequireFromString("15000"))
		require.NoError(t, err)
		require.NoError(t, items.Create(context.Background(), item))

		service := NewService(items, NewNoOpTransactionScope(items, movements))
		return service, items, movements, item
	}

	t.Run("applies the delta through a locked read", func(t *testing.T) {
		service, items, _, item := newFixture(t, "5")

		resp, err := service.AdjustStock(context.Background(), item.ID,
			AdjustStockRequest{Delta: decimal.RequireFromString("2.5")})
		require.NoError(t, err)
		assert.True(t, resp.CurrentStock.Equal(decimal.RequireFromString("7.5")))
		assert.Equal(t, 1, items.lockedReads)
	})

	t.Run("records the movement with the delta's sign", func(t *testing.T) {
		service, _, movements, item := newFixture(t, "5")

		_, err := service.AdjustStock(context.Background(), item.ID,
			AdjustStockRequest{Delta: decimal.RequireFromString("-1.5")})
		require.NoError(t, err)

		require.Len(t, movements.movements, 1)
		m := movements.movements[0]
		assert.Equal(t, inventory.MovementKindAdjustment, m.Kind)
		assert.True(t, m.Quantity.Equal(decimal.RequireFromString("-1.5")))
		assert.Nil(t, m.OrderID)
	})

	t.Run("rejects a zero delta", func(t *testing.T) {
		service, items, movements, item := newFixture(t, "5")

		_, err := service.AdjustStock(context.Background(), item.ID,
			AdjustStockRequest{Delta: decimal.Zero})
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
		assert.Equal(t, 0, items.lockedReads)
		assert.Empty(t, movements.movements)
	})

	t.Run("rejects an adjustment below zero stock", func(t *testing.T) {
		service, _, movements, item := newFixture(t, "1")

		_, err := service.AdjustStock(context.Background(), item.ID,
			AdjustStockRequest{Delta: decimal.RequireFromString("-2")})
		require.Error(t, err)
		assert.Empty(t, movements.movements)
	})
}
