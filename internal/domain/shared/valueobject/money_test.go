package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromInt(15000), CurrencyIDR)
		require.NoError(t, err)
		assert.Equal(t, CurrencyIDR, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(15000)))
	})

	t.Run("rejects empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "")
		require.Error(t, err)
	})

	t.Run("parses from string", func(t *testing.T) {
		m, err := NewMoneyIDRFromString("12500.50")
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.RequireFromString("12500.50")))
	})

	t.Run("rejects malformed string", func(t *testing.T) {
		_, err := NewMoneyIDRFromString("12,500")
		require.Error(t, err)
	})
}

func TestMoneyArithmetic(t *testing.T) {
	t.Run("adds same currency", func(t *testing.T) {
		a := NewMoneyIDR(decimal.RequireFromString("0.1"))
		b := NewMoneyIDR(decimal.RequireFromString("0.2"))

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.RequireFromString("0.3")),
			"decimal arithmetic must be exact")
	})

	t.Run("rejects currency mismatch", func(t *testing.T) {
		a := NewMoneyIDR(decimal.NewFromInt(100))
		b, err := NewMoney(decimal.NewFromInt(100), "USD")
		require.NoError(t, err)

		_, err = a.Add(b)
		require.Error(t, err)
		_, err = a.Subtract(b)
		require.Error(t, err)
	})

	t.Run("subtract and negate", func(t *testing.T) {
		a := NewMoneyIDR(decimal.NewFromInt(500))
		b := NewMoneyIDR(decimal.NewFromInt(200))

		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.True(t, diff.Amount().Equal(decimal.NewFromInt(300)))

		assert.True(t, diff.Negate().Amount().Equal(decimal.NewFromInt(-300)))
		assert.True(t, diff.Negate().IsNegative())
	})

	t.Run("multiplies by a factor", func(t *testing.T) {
		m := NewMoneyIDR(decimal.RequireFromString("12500.50")).Multiply(decimal.NewFromInt(3))
		assert.True(t, m.Amount().Equal(decimal.RequireFromString("37501.50")))
	})

	t.Run("rounds to places", func(t *testing.T) {
		m := NewMoneyIDR(decimal.RequireFromString("99.995")).Round(2)
		assert.Equal(t, "100.00 IDR", m.String())
	})
}

func TestMoneyEquals(t *testing.T) {
	a := NewMoneyIDR(decimal.RequireFromString("100.0"))
	b := NewMoneyIDR(decimal.NewFromInt(100))
	assert.True(t, a.Equals(b), "equality ignores decimal exponent")

	c, err := NewMoney(decimal.NewFromInt(100), "USD")
	require.NoError(t, err)
	assert.False(t, a.Equals(c))
}

func TestZeroIDR(t *testing.T) {
	assert.True(t, ZeroIDR().IsZero())
	assert.False(t, ZeroIDR().IsNegative())
}
