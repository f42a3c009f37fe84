package ledger

import (
	"time"

	"github.com/dailyledger/backend/internal/domain/shared"
)

// Category groups items that share an independent ledger.
type Category struct {
	ID        int64 `gorm:"primaryKey"`
	Name      string
	IsAgent   bool
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates an active category.
func NewCategory(name string, isAgent bool) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	return &Category{
		Name:    name,
		IsAgent: isAgent,
	}, nil
}

// MarkDeleted soft-deletes the category. Rows are never hard-deleted.
func (c *Category) MarkDeleted() {
	c.Deleted = true
}

// Item is a tracked product within a category.
type Item struct {
	ID         int64 `gorm:"primaryKey"`
	CategoryID int64
	Name       string
	Deleted    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewItem creates an active item in the given category.
func NewItem(categoryID int64, name string) (*Item, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if categoryID <= 0 {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Item requires a category")
	}
	return &Item{
		CategoryID: categoryID,
		Name:       name,
	}, nil
}

// MarkDeleted soft-deletes the item.
func (i *Item) MarkDeleted() {
	i.Deleted = true
}
