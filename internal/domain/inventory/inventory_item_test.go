package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungpos/backend/internal/domain/shared"
)

func newItem(t *testing.T, stock string) *InventoryItem {
	t.Helper()
	item, err := NewInventoryItem("Beras", "kg", "staple",
		decimal.RequireFromString(stock), decimal.NewFromInt(5), decimal.NewFromInt(12000))
	require.NoError(t, err)
	return item
}

func TestNewInventoryItem(t *testing.T) {
	t.Run("creates item", func(t *testing.T) {
		item := newItem(t, "25.5")
		assert.Equal(t, "Beras", item.Name)
		assert.Equal(t, "kg", item.Unit)
		assert.True(t, item.CurrentStock.Equal(decimal.RequireFromString("25.5")))
		assert.False(t, item.IsBelowThreshold())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewInventoryItem("", "kg", "", decimal.Zero, decimal.Zero, decimal.Zero)
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := NewInventoryItem("Gula", "kg", "", decimal.NewFromInt(-1), decimal.Zero, decimal.Zero)
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
	})
}

func TestInventoryItemDeduct(t *testing.T) {
	t.Run("deducts when stock suffices", func(t *testing.T) {
		item := newItem(t, "10")

		applied, short, err := item.Deduct(decimal.RequireFromString("2.5"), ShortagePolicyReject)
		require.NoError(t, err)

		assert.True(t, applied.Equal(decimal.RequireFromString("2.5")))
		assert.False(t, short)
		assert.True(t, item.CurrentStock.Equal(decimal.RequireFromString("7.5")))
	})

	t.Run("deduction to exactly zero is not a shortage", func(t *testing.T) {
		item := newItem(t, "3")

		applied, short, err := item.Deduct(decimal.NewFromInt(3), ShortagePolicyReject)
		require.NoError(t, err)

		assert.True(t, applied.Equal(decimal.NewFromInt(3)))
		assert.False(t, short)
		assert.True(t, item.CurrentStock.IsZero())
	})

	t.Run("reject policy fails on shortage and leaves stock unchanged", func(t *testing.T) {
		item := newItem(t, "2")

		_, _, err := item.Deduct(decimal.NewFromInt(5), ShortagePolicyReject)
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeInsufficientStock))
		assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(2)))
	})

	t.Run("clamp policy floors stock at zero and flags the shortage", func(t *testing.T) {
		item := newItem(t, "2")

		applied, short, err := item.Deduct(decimal.NewFromInt(5), ShortagePolicyClamp)
		require.NoError(t, err)

		assert.True(t, applied.Equal(decimal.NewFromInt(2)), "applied should be the stock that existed")
		assert.True(t, short)
		assert.True(t, item.CurrentStock.IsZero())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		item := newItem(t, "10")

		_, _, err := item.Deduct(decimal.Zero, ShortagePolicyReject)
		require.Error(t, err)
		_, _, err = item.Deduct(decimal.NewFromInt(-1), ShortagePolicyClamp)
		require.Error(t, err)
	})
}

func TestInventoryItemRestore(t *testing.T) {
	t.Run("restoring applied quantities is decimal exact", func(t *testing.T) {
		item := newItem(t, "10.75")
		before := item.CurrentStock

		applied, _, err := item.Deduct(decimal.RequireFromString("3.333"), ShortagePolicyReject)
		require.NoError(t, err)
		require.NoError(t, item.Restore(applied))

		assert.True(t, item.CurrentStock.Equal(before),
			"expected %s after round trip, got %s", before, item.CurrentStock)
	})

	t.Run("clamped deduction restores only what was applied", func(t *testing.T) {
		item := newItem(t, "2")

		applied, short, err := item.Deduct(decimal.NewFromInt(5), ShortagePolicyClamp)
		require.NoError(t, err)
		require.True(t, short)
		require.NoError(t, item.Restore(applied))

		assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(2)),
			"restore must replay the applied quantity, not the requested one")
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		item := newItem(t, "10")
		require.Error(t, item.Restore(decimal.Zero))
	})
}

func TestInventoryItemAdjust(t *testing.T) {
	t.Run("applies signed delta", func(t *testing.T) {
		item := newItem(t, "10")

		require.NoError(t, item.Adjust(decimal.NewFromInt(-4)))
		assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(6)))

		require.NoError(t, item.Adjust(decimal.NewFromInt(2)))
		assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(8)))
	})

	t.Run("rejects adjustment below zero", func(t *testing.T) {
		item := newItem(t, "3")

		err := item.Adjust(decimal.NewFromInt(-5))
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeInsufficientStock))
		assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(3)))
	})
}

func TestInventoryItemIsBelowThreshold(t *testing.T) {
	item := newItem(t, "5")
	assert.False(t, item.IsBelowThreshold(), "stock equal to threshold is not below it")

	_, _, err := item.Deduct(decimal.RequireFromString("0.1"), ShortagePolicyReject)
	require.NoError(t, err)
	assert.True(t, item.IsBelowThreshold())
}
