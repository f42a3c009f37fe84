package ledger

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dailyledger/backend/internal/domain/ledger"
)

// =============================================================================
// Mock repositories
// =============================================================================

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindActive(ctx context.Context) ([]ledger.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ledger.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]ledger.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ledger.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id int64) (*ledger.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveAll(ctx context.Context, categories []ledger.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindActiveByCategory(ctx context.Context, categoryID int64) ([]ledger.Item, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]ledger.Item), args.Error(1)
}

func (m *MockItemRepository) Save(ctx context.Context, item *ledger.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id int64) (*ledger.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindForDay(ctx context.Context, categoryID int64, day time.Time, filter ledger.TransactionFilter) ([]ledger.Transaction, error) {
	args := m.Called(ctx, categoryID, day, filter)
	return args.Get(0).([]ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *ledger.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Update(ctx context.Context, tx *ledger.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) LatestDateBefore(ctx context.Context, categoryID int64, cutoff time.Time) (time.Time, error) {
	args := m.Called(ctx, categoryID, cutoff)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockStockRepository) SignedQuantities(ctx context.Context, categoryID int64, date time.Time) ([]ledger.StockQuantity, error) {
	args := m.Called(ctx, categoryID, date)
	return args.Get(0).([]ledger.StockQuantity), args.Error(1)
}

type MockSnapshotCache struct {
	mock.Mock
}

func (m *MockSnapshotCache) Get(ctx context.Context, categoryID int64, day time.Time) ([]ledger.StockQuantity, bool, error) {
	args := m.Called(ctx, categoryID, day)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]ledger.StockQuantity), args.Bool(1), args.Error(2)
}

func (m *MockSnapshotCache) Set(ctx context.Context, categoryID int64, day time.Time, quantities []ledger.StockQuantity, ttl time.Duration) error {
	args := m.Called(ctx, categoryID, day, quantities, ttl)
	return args.Error(0)
}

func (m *MockSnapshotCache) Invalidate(ctx context.Context, categoryID int64) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func (m *MockSnapshotCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
