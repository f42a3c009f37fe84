package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dailyledger/backend/internal/domain/ledger"
	"github.com/dailyledger/backend/internal/domain/shared"
)

// =============================================================================
// Category DTOs
// =============================================================================

// CreateCategoryRequest is one element of the bulk category insert body
type CreateCategoryRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	IsAgent bool   `json:"isAgent"`
}

// CategoryResponse mirrors a stored category row
type CategoryResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	IsAgent bool   `json:"isAgent"`
	Deleted bool   `json:"deleted"`
}

func toCategoryResponse(c *ledger.Category) CategoryResponse {
	return CategoryResponse{
		ID:      c.ID,
		Name:    c.Name,
		IsAgent: c.IsAgent,
		Deleted: c.Deleted,
	}
}

// =============================================================================
// Item DTOs
// =============================================================================

// CreateItemRequest creates one item inside a category
type CreateItemRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// ItemResponse is the { id, name } pair the item listing returns
type ItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toItemResponse(i *ledger.Item) ItemResponse {
	return ItemResponse{ID: i.ID, Name: i.Name}
}

// =============================================================================
// Transaction DTOs
// =============================================================================

// TransactionDetailDTO is one item line on the wire
type TransactionDetailDTO struct {
	ItemID    int64   `json:"itemId" binding:"required"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// CreateTransactionRequest creates a transaction with its detail lines.
// The detail key matches the nested relation name the clients expect.
type CreateTransactionRequest struct {
	Buyer           string                 `json:"buyer"`
	Seller          string                 `json:"seller"`
	Amount          float64                `json:"amount"`
	TransactionDate string                 `json:"transactionDate" binding:"required,dateformat"`
	Details         []TransactionDetailDTO `json:"TransactionDetail"`
}

// UpdateTransactionRequest replaces a transaction's scalar fields and its
// full detail set
type UpdateTransactionRequest struct {
	ID          int64                  `json:"id" binding:"required"`
	Buyer       string                 `json:"buyer"`
	Seller      string                 `json:"seller"`
	Amount      float64                `json:"amount"`
	IsShipped   bool                   `json:"isShipped"`
	IsAccounted bool                   `json:"isAccounted"`
	Deleted     bool                   `json:"deleted"`
	Details     []TransactionDetailDTO `json:"TransactionDetail"`
}

// TransactionResponse mirrors the transaction listing shape
type TransactionResponse struct {
	ID          int64                  `json:"id"`
	Buyer       string                 `json:"buyer"`
	Seller      string                 `json:"seller"`
	Amount      float64                `json:"amount"`
	IsAccounted bool                   `json:"isAccounted"`
	IsShipped   bool                   `json:"isShipped"`
	Deleted     bool                   `json:"deleted"`
	Details     []TransactionDetailDTO `json:"TransactionDetail"`
}

func toTransactionResponse(t *ledger.Transaction) TransactionResponse {
	details := make([]TransactionDetailDTO, 0, len(t.Details))
	for _, d := range t.Details {
		details = append(details, TransactionDetailDTO{
			ItemID:    d.ItemID,
			Quantity:  d.Quantity.InexactFloat64(),
			UnitPrice: d.UnitPrice.InexactFloat64(),
		})
	}
	return TransactionResponse{
		ID:          t.ID,
		Buyer:       t.Buyer,
		Seller:      t.Seller,
		Amount:      t.Amount.InexactFloat64(),
		IsAccounted: t.IsAccounted,
		IsShipped:   t.IsShipped,
		Deleted:     t.Deleted,
		Details:     details,
	}
}

func toDomainDetails(dtos []TransactionDetailDTO) []ledger.TransactionDetail {
	details := make([]ledger.TransactionDetail, 0, len(dtos))
	for _, d := range dtos {
		details = append(details, ledger.TransactionDetail{
			ItemID:    d.ItemID,
			Quantity:  decimal.NewFromFloat(d.Quantity),
			UnitPrice: decimal.NewFromFloat(d.UnitPrice),
		})
	}
	return details
}

// =============================================================================
// Stock DTOs
// =============================================================================

// StockQuantityResponse is one row of the per-item net stock snapshot
type StockQuantityResponse struct {
	ItemID   int64   `json:"itemId"`
	Quantity float64 `json:"quantity"`
}

func toStockResponses(quantities []ledger.StockQuantity) []StockQuantityResponse {
	out := make([]StockQuantityResponse, 0, len(quantities))
	for _, q := range quantities {
		out = append(out, StockQuantityResponse{
			ItemID:   q.ItemID,
			Quantity: q.Quantity.InexactFloat64(),
		})
	}
	return out
}

// parseBusinessDate accepts either a plain YYYY-MM-DD date or a full
// RFC3339 timestamp and resolves it to the start of that business day.
// An empty value resolves to today.
func parseBusinessDate(value string) (time.Time, error) {
	if value == "" {
		return ledger.Today(), nil
	}
	if day, err := ledger.ParseDate(value); err == nil {
		return day, nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Invalid date: "+value)
	}
	return ledger.StartOfDay(ts), nil
}
