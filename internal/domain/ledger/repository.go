package ledger

import (
	"context"
	"time"
)

// TransactionFilter narrows a day's transaction listing. Type mirrors the
// REST query parameter: "stocks" pins buyer to Self, "orders" pins seller
// to Self, anything else leaves the roles unconstrained. Customer, when
// set, constrains the opposite party.
type TransactionFilter struct {
	Type     string
	Customer string
}

// Transaction listing types.
const (
	TypeStocks = "stocks"
	TypeOrders = "orders"
)

// CategoryRepository persists categories.
type CategoryRepository interface {
	FindActive(ctx context.Context) ([]Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, id int64) (*Category, error)
	SaveAll(ctx context.Context, categories []Category) error
}

// ItemRepository persists items.
type ItemRepository interface {
	FindActiveByCategory(ctx context.Context, categoryID int64) ([]Item, error)
	Save(ctx context.Context, item *Item) error
}

// TransactionRepository persists transactions with their detail lines.
type TransactionRepository interface {
	FindByID(ctx context.Context, id int64) (*Transaction, error)
	// FindForDay lists non-deleted transactions of a category on one day,
	// details preloaded.
	FindForDay(ctx context.Context, categoryID int64, day time.Time, filter TransactionFilter) ([]Transaction, error)
	Create(ctx context.Context, tx *Transaction) error
	// Update replaces the detail set and scalar fields atomically.
	Update(ctx context.Context, tx *Transaction) error
}

// StockRepository answers the stock snapshot aggregate.
type StockRepository interface {
	// LatestDateBefore returns the most recent transaction date of the
	// category strictly before cutoff, or the zero time when none exists.
	LatestDateBefore(ctx context.Context, categoryID int64, cutoff time.Time) (time.Time, error)
	// SignedQuantities aggregates per-item net quantity across all
	// transactions of the category on the given date: positive when the
	// category's own inventory is the buyer, negative when it is the
	// seller.
	SignedQuantities(ctx context.Context, categoryID int64, date time.Time) ([]StockQuantity, error)
}
