package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, BusinessZone)

	t.Run("creates transaction with details", func(t *testing.T) {
		tx, err := NewTransaction(1, Self, "supplier", day, []TransactionDetail{
			{ItemID: 1, Quantity: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(10)},
		})
		require.NoError(t, err)
		assert.Equal(t, Self, tx.Buyer)
		assert.Equal(t, day, tx.TransactionDate)
		assert.True(t, tx.Amount.IsZero())
		assert.Len(t, tx.Details, 1)
	})

	t.Run("truncates date to start of day", func(t *testing.T) {
		noon := time.Date(2024, 3, 15, 12, 30, 0, 0, BusinessZone)
		tx, err := NewTransaction(1, Self, "x", noon, nil)
		require.NoError(t, err)
		assert.Equal(t, day, tx.TransactionDate)
	})

	t.Run("rejects missing category", func(t *testing.T) {
		_, err := NewTransaction(0, Self, "x", day, nil)
		assert.Error(t, err)
	})

	t.Run("rejects duplicate item details", func(t *testing.T) {
		_, err := NewTransaction(1, Self, "x", day, []TransactionDetail{
			{ItemID: 1}, {ItemID: 1},
		})
		assert.Error(t, err)
	})
}

func TestTransaction_TotalAmount(t *testing.T) {
	tx := Transaction{Details: []TransactionDetail{
		{ItemID: 1, Quantity: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(10)},
		{ItemID: 2, Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromFloat(2.5)},
	}}
	assert.True(t, tx.TotalAmount().Equal(decimal.NewFromFloat(57.5)))
}

func TestTransaction_ReplaceDetails(t *testing.T) {
	t.Run("assigns transaction id to new lines", func(t *testing.T) {
		tx := Transaction{ID: 42, Details: []TransactionDetail{{ItemID: 1}}}
		err := tx.ReplaceDetails([]TransactionDetail{
			{ItemID: 2, Quantity: decimal.NewFromInt(1)},
			{ItemID: 3, Quantity: decimal.NewFromInt(2)},
		})
		require.NoError(t, err)
		require.Len(t, tx.Details, 2)
		for _, d := range tx.Details {
			assert.Equal(t, int64(42), d.TransactionID)
		}
	})

	t.Run("rejects duplicate items", func(t *testing.T) {
		tx := Transaction{ID: 42}
		err := tx.ReplaceDetails([]TransactionDetail{{ItemID: 2}, {ItemID: 2}})
		assert.Error(t, err)
	})
}

func TestTransaction_Roles(t *testing.T) {
	order := Transaction{Buyer: "customer", Seller: Self}
	stock := Transaction{Buyer: Self, Seller: "supplier"}

	assert.True(t, order.IsOrder())
	assert.False(t, order.IsStockEntry())
	assert.True(t, stock.IsStockEntry())
	assert.False(t, stock.IsOrder())
}

func TestTransaction_DetailFor(t *testing.T) {
	tx := Transaction{Details: []TransactionDetail{
		{ItemID: 1, Quantity: decimal.NewFromInt(5)},
	}}

	d := tx.DetailFor(1)
	require.NotNil(t, d)
	d.Quantity = decimal.NewFromInt(7)
	assert.True(t, tx.Details[0].Quantity.Equal(decimal.NewFromInt(7)))

	assert.Nil(t, tx.DetailFor(99))
}
