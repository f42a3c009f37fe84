package persistence

import (
	"context"
	"time"

	"github.com/dailyledger/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormStockRepository answers the stock snapshot aggregate using GORM
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// LatestDateBefore returns the most recent transaction date of the
// category strictly before cutoff. Future-dated transactions may exist,
// so the cutoff bound matters. Returns the zero time when no prior
// transaction exists.
func (r *GormStockRepository) LatestDateBefore(ctx context.Context, categoryID int64, cutoff time.Time) (time.Time, error) {
	var result struct {
		Latest *time.Time
	}
	err := r.db.WithContext(ctx).
		Model(&ledger.Transaction{}).
		Select("MAX(transaction_date) AS latest").
		Where("category_id = ? AND deleted = ? AND transaction_date < ?",
			categoryID, false, cutoff).
		Scan(&result).Error
	if err != nil {
		return time.Time{}, err
	}
	if result.Latest == nil {
		return time.Time{}, nil
	}
	return *result.Latest, nil
}

// SignedQuantities aggregates per-item net quantity across all of the
// category's transactions on one date: quantity counts positive when the
// category's own inventory is the buyer and negative when it is the
// seller. Raw SQL keeps the grouped signed sum in the database instead
// of pulling every detail row through the ORM.
func (r *GormStockRepository) SignedQuantities(ctx context.Context, categoryID int64, date time.Time) ([]ledger.StockQuantity, error) {
	type row struct {
		ItemID   int64
		Quantity decimal.Decimal
	}

	var rows []row
	err := r.db.WithContext(ctx).Raw(`
		SELECT detail.item_id,
		       SUM(CASE tx.buyer WHEN ? THEN detail.quantity ELSE -detail.quantity END) AS quantity
		FROM transactions AS tx
		JOIN transaction_details AS detail ON detail.transaction_id = tx.id
		WHERE tx.category_id = ?
		  AND tx.transaction_date = ?
		  AND tx.deleted = ?
		GROUP BY detail.item_id`,
		ledger.Self, categoryID, date, false,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	quantities := make([]ledger.StockQuantity, 0, len(rows))
	for _, r := range rows {
		quantities = append(quantities, ledger.StockQuantity{
			ItemID:   r.ItemID,
			Quantity: r.Quantity,
		})
	}
	return quantities, nil
}
