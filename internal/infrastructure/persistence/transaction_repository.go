package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/dailyledger/backend/internal/domain/ledger"
	"github.com/dailyledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormTransactionRepository implements ledger.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByID finds a transaction with its details by ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id int64) (*ledger.Transaction, error) {
	var tx ledger.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Details").
		First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tx, nil
}

// FindForDay lists a category's non-deleted transactions on one day with
// details preloaded. The filter pins buyer or seller to the Self sentinel
// the same way the listing endpoint's type/customer parameters do.
func (r *GormTransactionRepository) FindForDay(ctx context.Context, categoryID int64, day time.Time, filter ledger.TransactionFilter) ([]ledger.Transaction, error) {
	query := r.db.WithContext(ctx).
		Preload("Details").
		Where("category_id = ? AND deleted = ? AND transaction_date = ?",
			categoryID, false, ledger.StartOfDay(day))

	switch filter.Type {
	case ledger.TypeStocks:
		query = query.Where("buyer = ?", ledger.Self)
		if filter.Customer != "" {
			query = query.Where("seller = ?", filter.Customer)
		}
	case ledger.TypeOrders:
		query = query.Where("seller = ?", ledger.Self)
		if filter.Customer != "" {
			query = query.Where("buyer = ?", filter.Customer)
		}
	}

	var txs []ledger.Transaction
	if err := query.Order("id ASC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// Create inserts a transaction together with its detail lines
func (r *GormTransactionRepository) Create(ctx context.Context, tx *ledger.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// Update replaces the full detail set and the scalar fields in one
// database transaction, so a failure between the delete and the insert
// cannot leave the detail set empty.
func (r *GormTransactionRepository) Update(ctx context.Context, tx *ledger.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		if err := dbtx.
			Where("transaction_id = ?", tx.ID).
			Delete(&ledger.TransactionDetail{}).Error; err != nil {
			return err
		}

		result := dbtx.Model(&ledger.Transaction{}).
			Where("id = ?", tx.ID).
			Updates(map[string]any{
				"buyer":        tx.Buyer,
				"seller":       tx.Seller,
				"amount":       tx.Amount,
				"is_shipped":   tx.IsShipped,
				"is_accounted": tx.IsAccounted,
				"deleted":      tx.Deleted,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		if len(tx.Details) == 0 {
			return nil
		}
		for i := range tx.Details {
			tx.Details[i].TransactionID = tx.ID
		}
		return dbtx.Create(&tx.Details).Error
	})
}
