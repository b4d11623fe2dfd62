package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungpos/backend/internal/domain/shared"
	"github.com/warungpos/backend/internal/domain/shared/valueobject"
)

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"waiting to cooking", StatusWaiting, StatusCooking, true},
		{"waiting to canceled", StatusWaiting, StatusCanceled, true},
		{"waiting to completed skips cooking", StatusWaiting, StatusCompleted, false},
		{"cooking to completed", StatusCooking, StatusCompleted, true},
		{"cooking to canceled", StatusCooking, StatusCanceled, true},
		{"cooking back to waiting", StatusCooking, StatusWaiting, false},
		{"completed is terminal", StatusCompleted, StatusCanceled, false},
		{"canceled is terminal", StatusCanceled, StatusWaiting, false},
		{"completed to cooking", StatusCompleted, StatusCooking, false},
		{"waiting to itself", StatusWaiting, StatusWaiting, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusWaiting.IsTerminal())
	assert.False(t, StatusCooking.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order in waiting state", func(t *testing.T) {
		o, err := NewOrder("ORD-20260115-a1b2c3d4", "dine_in", decimal.NewFromInt(45000))
		require.NoError(t, err)
		require.NotNil(t, o)

		assert.Equal(t, "ORD-20260115-a1b2c3d4", o.OrderNumber)
		assert.Equal(t, StatusWaiting, o.Status)
		assert.Equal(t, "dine_in", o.OrderType)
		assert.True(t, o.TotalAmount.Equal(decimal.NewFromInt(45000)))
		assert.Empty(t, o.Items)
		assert.Nil(t, o.CompletedAt)
		assert.Nil(t, o.CanceledAt)
		assert.NotEmpty(t, o.ID)
		assert.Equal(t, 1, o.GetVersion())
	})

	t.Run("fails with empty order number", func(t *testing.T) {
		_, err := NewOrder("", "dine_in", decimal.NewFromInt(1000))
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
	})

	t.Run("fails with order number too long", func(t *testing.T) {
		long := make([]byte, 51)
		for i := range long {
			long[i] = 'X'
		}
		_, err := NewOrder(string(long), "dine_in", decimal.NewFromInt(1000))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 50 characters")
	})

	t.Run("fails with empty order type", func(t *testing.T) {
		_, err := NewOrder("ORD-20260115-a1b2c3d4", "", decimal.NewFromInt(1000))
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
	})

	t.Run("fails with negative total", func(t *testing.T) {
		_, err := NewOrder("ORD-20260115-a1b2c3d4", "gofood", decimal.NewFromInt(-1))
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
	})

	t.Run("accepts zero total", func(t *testing.T) {
		o, err := NewOrder("ORD-20260115-a1b2c3d4", "dine_in", decimal.Zero)
		require.NoError(t, err)
		assert.True(t, o.TotalAmount.IsZero())
	})
}

func TestOrderAddItem(t *testing.T) {
	newWaitingOrder := func(t *testing.T) *Order {
		t.Helper()
		o, err := NewOrder("ORD-20260115-a1b2c3d4", "dine_in", decimal.NewFromInt(30000))
		require.NoError(t, err)
		return o
	}

	t.Run("adds items with sequential line numbers", func(t *testing.T) {
		o := newWaitingOrder(t)

		first, err := o.AddItem(uuid.New(), 2, valueobject.NewMoneyIDR(decimal.NewFromInt(10000)), "")
		require.NoError(t, err)
		second, err := o.AddItem(uuid.New(), 1, valueobject.NewMoneyIDR(decimal.NewFromInt(10000)), "no ice")
		require.NoError(t, err)

		assert.Equal(t, 1, first.LineNo)
		assert.Equal(t, 2, second.LineNo)
		assert.Equal(t, 2, o.ItemCount())
		assert.Equal(t, o.ID, first.OrderID)
		assert.Equal(t, "no ice", second.Note)
	})

	t.Run("same product may appear on multiple lines", func(t *testing.T) {
		o := newWaitingOrder(t)
		productID := uuid.New()

		_, err := o.AddItem(productID, 1, valueobject.NewMoneyIDR(decimal.NewFromInt(15000)), "")
		require.NoError(t, err)
		_, err = o.AddItem(productID, 1, valueobject.NewMoneyIDR(decimal.NewFromInt(15000)), "extra spicy")
		require.NoError(t, err)

		assert.Equal(t, 2, o.ItemCount())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		o := newWaitingOrder(t)
		_, err := o.AddItem(uuid.New(), 0, valueobject.NewMoneyIDR(decimal.NewFromInt(10000)), "")
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
	})

	t.Run("rejects negative price", func(t *testing.T) {
		o := newWaitingOrder(t)
		_, err := o.AddItem(uuid.New(), 1, valueobject.NewMoneyIDR(decimal.NewFromInt(-100)), "")
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
	})

	t.Run("rejects items once order left waiting", func(t *testing.T) {
		o := newWaitingOrder(t)
		require.NoError(t, o.TransitionTo(StatusCooking))

		_, err := o.AddItem(uuid.New(), 1, valueobject.NewMoneyIDR(decimal.NewFromInt(10000)), "")
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeInvalidTransition))
	})
}

func TestOrderTransitionTo(t *testing.T) {
	t.Run("full happy path stamps completion time", func(t *testing.T) {
		o, err := NewOrder("ORD-20260115-a1b2c3d4", "grab", decimal.NewFromInt(25000))
		require.NoError(t, err)

		require.NoError(t, o.TransitionTo(StatusCooking))
		assert.Equal(t, StatusCooking, o.Status)
		assert.Nil(t, o.CompletedAt)

		require.NoError(t, o.TransitionTo(StatusCompleted))
		assert.Equal(t, StatusCompleted, o.Status)
		require.NotNil(t, o.CompletedAt)
		assert.True(t, o.IsCompleted())
	})

	t.Run("cancellation from cooking stamps cancel time", func(t *testing.T) {
		o, err := NewOrder("ORD-20260115-a1b2c3d4", "dine_in", decimal.NewFromInt(25000))
		require.NoError(t, err)

		require.NoError(t, o.TransitionTo(StatusCooking))
		require.NoError(t, o.TransitionTo(StatusCanceled))

		assert.True(t, o.IsCanceled())
		require.NotNil(t, o.CanceledAt)
		assert.Nil(t, o.CompletedAt)
	})

	t.Run("illegal transition leaves order untouched", func(t *testing.T) {
		o, err := NewOrder("ORD-20260115-a1b2c3d4", "dine_in", decimal.NewFromInt(25000))
		require.NoError(t, err)

		err = o.TransitionTo(StatusCompleted)
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeInvalidTransition))
		assert.Equal(t, StatusWaiting, o.Status)
		assert.Nil(t, o.CompletedAt)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		o, err := NewOrder("ORD-20260115-a1b2c3d4", "dine_in", decimal.NewFromInt(25000))
		require.NoError(t, err)

		err = o.TransitionTo(Status("delivered"))
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
	})

	t.Run("terminal states reject everything", func(t *testing.T) {
		o, err := NewOrder("ORD-20260115-a1b2c3d4", "dine_in", decimal.NewFromInt(25000))
		require.NoError(t, err)
		require.NoError(t, o.TransitionTo(StatusCanceled))

		for _, target := range []Status{StatusWaiting, StatusCooking, StatusCompleted} {
			err := o.TransitionTo(target)
			require.Error(t, err)
			assert.True(t, shared.HasCode(err, shared.CodeInvalidTransition))
		}
	})
}

func TestOrderItemsTotal(t *testing.T) {
	o, err := NewOrder("ORD-20260115-a1b2c3d4", "shopee", decimal.NewFromInt(55000))
	require.NoError(t, err)

	_, err = o.AddItem(uuid.New(), 2, valueobject.NewMoneyIDR(decimal.NewFromInt(20000)), "")
	require.NoError(t, err)
	_, err = o.AddItem(uuid.New(), 3, valueobject.NewMoneyIDR(decimal.NewFromInt(5000)), "")
	require.NoError(t, err)

	assert.True(t, o.ItemsTotal().Equal(decimal.NewFromInt(55000)))
	assert.True(t, o.ItemsTotal().Equal(o.TotalAmount))
}

func TestItemSubtotal(t *testing.T) {
	item, err := NewItem(uuid.New(), uuid.New(), 1, 3, valueobject.NewMoneyIDR(decimal.RequireFromString("12500.50")), "")
	require.NoError(t, err)

	assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("37501.50")))
}
