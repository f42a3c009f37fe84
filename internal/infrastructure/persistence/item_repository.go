package persistence

import (
	"context"

	"github.com/dailyledger/backend/internal/domain/ledger"
	"gorm.io/gorm"
)

// GormItemRepository implements ledger.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindActiveByCategory returns a category's items that are not soft-deleted
func (r *GormItemRepository) FindActiveByCategory(ctx context.Context, categoryID int64) ([]ledger.Item, error) {
	var items []ledger.Item
	if err := r.db.WithContext(ctx).
		Where("category_id = ? AND deleted = ?", categoryID, false).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates an item
func (r *GormItemRepository) Save(ctx context.Context, item *ledger.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}
