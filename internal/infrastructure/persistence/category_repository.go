package persistence

import (
	"context"
	"errors"

	"github.com/dailyledger/backend/internal/domain/ledger"
	"github.com/dailyledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCategoryRepository implements ledger.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindActive returns categories that are not soft-deleted
func (r *GormCategoryRepository) FindActive(ctx context.Context) ([]ledger.Category, error) {
	var categories []ledger.Category
	if err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Order("id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindAll returns every category including soft-deleted ones
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]ledger.Category, error) {
	var categories []ledger.Category
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByID finds a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id int64) (*ledger.Category, error) {
	var category ledger.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// SaveAll inserts the given categories in one statement
func (r *GormCategoryRepository) SaveAll(ctx context.Context, categories []ledger.Category) error {
	if len(categories) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&categories).Error
}
