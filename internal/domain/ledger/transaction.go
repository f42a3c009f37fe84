package ledger

import (
	"time"

	"github.com/dailyledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Sentinel party values. Self marks the business's own inventory as the
// buyer or seller of a movement; Stock marks carried-over inventory from
// the previous day. The remaining sentinels are the auxiliary order rows
// an agent category maintains.
const (
	Self  = "self"
	Stock = "stock"

	Loss       = "LOSS"
	Worker     = "WORKER"
	Transport  = "TRANSPORT"
	Commission = "COMMISSION"
)

// AgentBuyers are the sub-ledger rows seeded for an agent category's day.
var AgentBuyers = []string{Worker, Transport, Commission}

// TransactionDetail is one item line of a transaction. A transaction
// carries at most one detail per item.
type TransactionDetail struct {
	TransactionID int64 `gorm:"primaryKey"`
	ItemID        int64 `gorm:"primaryKey"`
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
}

// Amount returns quantity times unit price for this line.
func (d TransactionDetail) Amount() decimal.Decimal {
	return d.Quantity.Mul(d.UnitPrice)
}

// Transaction is a single buy/sell movement in a category's daily ledger.
// One of Buyer/Seller is expected to be the Self sentinel. Amount is
// stored redundantly and is not recomputed by the server on write.
type Transaction struct {
	ID                  int64 `gorm:"primaryKey"`
	CategoryID          int64
	Buyer               string
	Seller              string
	Amount              decimal.Decimal
	IsShipped           bool
	IsAccounted         bool
	Deleted             bool
	TransactionDate     time.Time
	ParentTransactionID *int64
	Details             []TransactionDetail `gorm:"foreignKey:TransactionID"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewTransaction creates a transaction for the given day with the
// supplied detail lines.
func NewTransaction(categoryID int64, buyer, seller string, date time.Time, details []TransactionDetail) (*Transaction, error) {
	if categoryID <= 0 {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Transaction requires a category")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Transaction requires a date")
	}
	if err := validateDetails(details); err != nil {
		return nil, err
	}
	return &Transaction{
		CategoryID:      categoryID,
		Buyer:           buyer,
		Seller:          seller,
		Amount:          decimal.Zero,
		TransactionDate: StartOfDay(date),
		Details:         details,
	}, nil
}

func validateDetails(details []TransactionDetail) error {
	seen := make(map[int64]struct{}, len(details))
	for _, d := range details {
		if d.ItemID <= 0 {
			return shared.NewDomainError("INVALID_ITEM", "Detail requires an item")
		}
		if _, dup := seen[d.ItemID]; dup {
			return shared.NewDomainError("DUPLICATE_ITEM", "At most one detail per item")
		}
		seen[d.ItemID] = struct{}{}
	}
	return nil
}

// IsOrder reports whether the row is an outbound sale.
func (t *Transaction) IsOrder() bool {
	return t.Seller == Self
}

// IsStockEntry reports whether the row is an inbound stock movement.
func (t *Transaction) IsStockEntry() bool {
	return t.Buyer == Self
}

// DetailFor returns a pointer into Details for the given item, or nil.
func (t *Transaction) DetailFor(itemID int64) *TransactionDetail {
	for i := range t.Details {
		if t.Details[i].ItemID == itemID {
			return &t.Details[i]
		}
	}
	return nil
}

// TotalAmount sums quantity times unit price across all details.
func (t *Transaction) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, d := range t.Details {
		total = total.Add(d.Amount())
	}
	return total
}

// ReplaceDetails swaps the full detail set, enforcing the one-per-item
// invariant. Amount is left untouched; callers decide whether to
// recompute it.
func (t *Transaction) ReplaceDetails(details []TransactionDetail) error {
	if err := validateDetails(details); err != nil {
		return err
	}
	for i := range details {
		details[i].TransactionID = t.ID
	}
	t.Details = details
	return nil
}

// MarkDeleted soft-deletes the transaction.
func (t *Transaction) MarkDeleted() {
	t.Deleted = true
}

// StockQuantity is one row of the per-item signed net quantity snapshot.
type StockQuantity struct {
	ItemID   int64
	Quantity decimal.Decimal
}
