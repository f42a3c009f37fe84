package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dailyledger/backend/internal/domain/ledger"
	"github.com/dailyledger/backend/internal/domain/shared"
)

func newTransactionService(repo *MockTransactionRepository, cache ledger.SnapshotCache) *TransactionService {
	return NewTransactionService(repo, cache, zap.NewNop())
}

func TestTransactionService_ListForDay(t *testing.T) {
	t.Run("defaults to today and maps rows", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		svc := newTransactionService(repo, nil)

		repo.On("FindForDay", mock.Anything, int64(1), ledger.Today(), ledger.TransactionFilter{Type: ledger.TypeOrders}).
			Return([]ledger.Transaction{
				{
					ID:     9,
					Buyer:  "customer",
					Seller: ledger.Self,
					Amount: decimal.NewFromInt(50),
					Details: []ledger.TransactionDetail{
						{ItemID: 1, Quantity: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(10)},
					},
				},
			}, nil)

		got, err := svc.ListForDay(context.Background(), 1, "", ledger.TransactionFilter{Type: ledger.TypeOrders})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(9), got[0].ID)
		assert.Equal(t, 50.0, got[0].Amount)
		require.Len(t, got[0].Details, 1)
		assert.Equal(t, 5.0, got[0].Details[0].Quantity)
		repo.AssertExpectations(t)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		svc := newTransactionService(repo, nil)

		_, err := svc.ListForDay(context.Background(), 1, "not-a-date", ledger.TransactionFilter{})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "FindForDay")
	})
}

func TestTransactionService_Create(t *testing.T) {
	t.Run("stores transaction and invalidates snapshots", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		cache := new(MockSnapshotCache)
		svc := newTransactionService(repo, cache)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(tx *ledger.Transaction) bool {
			return tx.CategoryID == 1 &&
				tx.Buyer == ledger.Self &&
				tx.Amount.Equal(decimal.NewFromInt(50)) &&
				len(tx.Details) == 1
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*ledger.Transaction).ID = 11
		}).Return(nil)
		cache.On("Invalidate", mock.Anything, int64(1)).Return(nil)

		got, err := svc.Create(context.Background(), 1, CreateTransactionRequest{
			Buyer:           ledger.Self,
			Seller:          "supplier",
			Amount:          50,
			TransactionDate: "2026-03-15",
			Details:         []TransactionDetailDTO{{ItemID: 1, Quantity: 5, UnitPrice: 10}},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), got.ID)
		assert.Equal(t, 50.0, got.Amount)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("accepts RFC3339 transaction dates", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		svc := newTransactionService(repo, nil)

		want := time.Date(2026, 3, 15, 0, 0, 0, 0, ledger.BusinessZone)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(tx *ledger.Transaction) bool {
			return tx.TransactionDate.Equal(want)
		})).Return(nil)

		_, err := svc.Create(context.Background(), 1, CreateTransactionRequest{
			Buyer:           ledger.Self,
			TransactionDate: "2026-03-15T00:00:00.000+08:00",
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate items", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		svc := newTransactionService(repo, nil)

		_, err := svc.Create(context.Background(), 1, CreateTransactionRequest{
			Buyer:           ledger.Self,
			TransactionDate: "2026-03-15",
			Details: []TransactionDetailDTO{
				{ItemID: 1, Quantity: 5},
				{ItemID: 1, Quantity: 3},
			},
		})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestTransactionService_Update(t *testing.T) {
	existing := func() *ledger.Transaction {
		return &ledger.Transaction{
			ID:              7,
			CategoryID:      1,
			Buyer:           ledger.Self,
			Seller:          "supplier",
			Amount:          decimal.NewFromInt(50),
			TransactionDate: time.Date(2026, 3, 15, 0, 0, 0, 0, ledger.BusinessZone),
			Details: []ledger.TransactionDetail{
				{TransactionID: 7, ItemID: 1, Quantity: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(10)},
			},
		}
	}

	t.Run("replaces details and scalars", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		cache := new(MockSnapshotCache)
		svc := newTransactionService(repo, cache)

		repo.On("FindByID", mock.Anything, int64(7)).Return(existing(), nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(tx *ledger.Transaction) bool {
			return tx.ID == 7 &&
				len(tx.Details) == 1 &&
				tx.Details[0].ItemID == 2 &&
				tx.IsAccounted &&
				tx.Amount.Equal(decimal.NewFromInt(28))
		})).Return(nil)
		cache.On("Invalidate", mock.Anything, int64(1)).Return(nil)

		got, err := svc.Update(context.Background(), 1, 7, UpdateTransactionRequest{
			ID:          7,
			Buyer:       ledger.Self,
			Seller:      "supplier",
			Amount:      28,
			IsAccounted: true,
			Details:     []TransactionDetailDTO{{ItemID: 2, Quantity: 7, UnitPrice: 4}},
		})
		require.NoError(t, err)
		assert.Equal(t, 28.0, got.Amount)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("rejects path and body id mismatch", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		svc := newTransactionService(repo, nil)

		_, err := svc.Update(context.Background(), 1, 7, UpdateTransactionRequest{ID: 8})
		assert.ErrorIs(t, err, shared.ErrIDMismatch)
		repo.AssertNotCalled(t, "FindByID")
	})

	t.Run("soft delete flows through", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		cache := new(MockSnapshotCache)
		svc := newTransactionService(repo, cache)

		repo.On("FindByID", mock.Anything, int64(7)).Return(existing(), nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(tx *ledger.Transaction) bool {
			return tx.Deleted
		})).Return(nil)
		cache.On("Invalidate", mock.Anything, int64(1)).Return(nil)

		_, err := svc.Update(context.Background(), 1, 7, UpdateTransactionRequest{
			ID:      7,
			Deleted: true,
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("missing transaction maps to not found", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		svc := newTransactionService(repo, nil)

		repo.On("FindByID", mock.Anything, int64(7)).Return(nil, shared.ErrNotFound)

		_, err := svc.Update(context.Background(), 1, 7, UpdateTransactionRequest{ID: 7})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
