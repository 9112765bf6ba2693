package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("supported currency", func(t *testing.T) {
		m, err := NewMoney(decimal.RequireFromString("100.50"), INR)
		require.NoError(t, err)
		assert.Equal(t, INR, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.RequireFromString("100.5")))
	})

	t.Run("empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "")
		assert.Error(t, err)
	})

	t.Run("unknown currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "XYZ")
		assert.Error(t, err)
	})
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency("USD")
	require.NoError(t, err)
	assert.Equal(t, USD, c)

	_, err = ParseCurrency("usd")
	assert.Error(t, err)
}

func TestCurrency_Symbol(t *testing.T) {
	assert.Equal(t, "₹", INR.Symbol())
	assert.Equal(t, "€", EUR.Symbol())
	assert.Equal(t, "XYZ", Currency("XYZ").Symbol())
}

func TestMoney_String(t *testing.T) {
	m, err := NewMoney(decimal.RequireFromString("999"), INR)
	require.NoError(t, err)
	assert.Equal(t, "₹999.00", m.String())
}

func TestMoney_JSON(t *testing.T) {
	m, err := NewMoney(decimal.RequireFromString("12.5"), EUR)
	require.NoError(t, err)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"12.5","currency":"EUR"}`, string(data))

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, m.Equals(back))

	assert.Error(t, json.Unmarshal([]byte(`{"amount":"abc","currency":"EUR"}`), &back))
}

func TestRangeOf(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, ok := RangeOf(INR)
		assert.False(t, ok)
	})

	t.Run("finds min and max", func(t *testing.T) {
		r, ok := RangeOf(INR,
			decimal.NewFromInt(300),
			decimal.NewFromInt(100),
			decimal.NewFromInt(500),
		)
		require.True(t, ok)
		assert.Equal(t, "100", r.Min.Amount().String())
		assert.Equal(t, "500", r.Max.Amount().String())
		assert.False(t, r.IsSingle())
		assert.Equal(t, "₹100.00 - ₹500.00", r.String())
	})

	t.Run("single amount", func(t *testing.T) {
		r, ok := RangeOf(INR, decimal.NewFromInt(999), decimal.RequireFromString("999.00"))
		require.True(t, ok)
		assert.True(t, r.IsSingle())
		assert.Equal(t, "₹999.00", r.String())
	})
}
