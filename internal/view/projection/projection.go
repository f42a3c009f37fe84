// Package projection flattens transactions into the tabular shape the
// ledger grids render: one row per transaction, one column pair per
// catalog item (quantity plus unit price), scalar fields around them.
package projection

import (
	"sort"
	"strconv"
	"strings"

	ledgerapp "github.com/dailyledger/backend/internal/application/ledger"
	"github.com/dailyledger/backend/internal/domain/ledger"
)

// Scalar column keys. Item columns use the item id as key and the id
// with UnitPriceSuffix for the matching price column.
const (
	ColumnID          = "id"
	ColumnBuyer       = "buyer"
	ColumnSeller      = "seller"
	ColumnAmount      = "amount"
	ColumnIsAccounted = "isAccounted"
	ColumnIsShipped   = "isShipped"
	ColumnDeleted     = "deleted"

	UnitPriceSuffix = "_price"
)

// ItemColumn returns the quantity column key for an item.
func ItemColumn(itemID int64) string {
	return strconv.FormatInt(itemID, 10)
}

// PriceColumn returns the unit price column key for an item.
func PriceColumn(itemID int64) string {
	return ItemColumn(itemID) + UnitPriceSuffix
}

// Columns is the rendering order for a category's item set: scalars
// first, then a quantity/price pair per item sorted by item id, then the
// trailing bookkeeping flags.
func Columns(items []ledgerapp.ItemResponse) []string {
	sorted := sortedItems(items)
	cols := make([]string, 0, 6+2*len(sorted))
	cols = append(cols, ColumnID, ColumnBuyer, ColumnSeller)
	for _, item := range sorted {
		cols = append(cols, ItemColumn(item.ID), PriceColumn(item.ID))
	}
	return append(cols, ColumnAmount, ColumnIsAccounted, ColumnIsShipped)
}

// Flatten projects a transaction onto a category's item set. Every item
// gets a quantity and a price cell, zero filled when the transaction
// carries no detail line for it.
func Flatten(tx ledgerapp.TransactionResponse, items []ledgerapp.ItemResponse) map[string]any {
	row := map[string]any{
		ColumnID:          tx.ID,
		ColumnBuyer:       tx.Buyer,
		ColumnSeller:      tx.Seller,
		ColumnAmount:      tx.Amount,
		ColumnIsAccounted: tx.IsAccounted,
		ColumnIsShipped:   tx.IsShipped,
		ColumnDeleted:     tx.Deleted,
	}
	for _, item := range items {
		row[ItemColumn(item.ID)] = float64(0)
		row[PriceColumn(item.ID)] = float64(0)
	}
	for _, d := range tx.Details {
		row[ItemColumn(d.ItemID)] = d.Quantity
		row[PriceColumn(d.ItemID)] = d.UnitPrice
	}
	return row
}

// FlattenAll projects a whole day's transactions.
func FlattenAll(txs []ledgerapp.TransactionResponse, items []ledgerapp.ItemResponse) []map[string]any {
	rows := make([]map[string]any, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, Flatten(tx, items))
	}
	return rows
}

// HeaderName resolves a column key to its display label. Item columns
// resolve to the item name, price columns to the name with the unit
// price label appended. Overrides win for scalar columns; unknown keys
// fall back to the key itself.
func HeaderName(column string, items []ledgerapp.ItemResponse, overrides map[string]string) string {
	if name, ok := overrides[column]; ok {
		return name
	}
	key, suffix := column, ""
	if id, found := strings.CutSuffix(column, UnitPriceSuffix); found {
		key, suffix = id, "單價"
	}
	if itemID, err := strconv.ParseInt(key, 10, 64); err == nil {
		for _, item := range items {
			if item.ID == itemID {
				return item.Name + suffix
			}
		}
	}
	return column
}

// ApplyEdit writes a single cell edit back onto the transaction and
// reports whether anything changed. Unknown columns and values that do
// not parse for the column's type are ignored rather than rejected, so
// a half-typed cell never corrupts the row. After a quantity or price
// edit the amount is recomputed from the full detail set.
func ApplyEdit(tx *ledgerapp.TransactionResponse, column, value string) bool {
	switch column {
	case ColumnBuyer:
		tx.Buyer = value
	case ColumnSeller:
		tx.Seller = value
	case ColumnAmount:
		amount, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		tx.Amount = amount
	case ColumnIsAccounted:
		flag, err := strconv.ParseBool(value)
		if err != nil {
			return false
		}
		tx.IsAccounted = flag
	case ColumnIsShipped:
		flag, err := strconv.ParseBool(value)
		if err != nil {
			return false
		}
		tx.IsShipped = flag
	case ColumnID, ColumnDeleted:
		return false
	default:
		return applyDetailEdit(tx, column, value)
	}
	return true
}

func applyDetailEdit(tx *ledgerapp.TransactionResponse, column, value string) bool {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	key, isPrice := strings.CutSuffix(column, UnitPriceSuffix)
	itemID, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return false
	}
	for i := range tx.Details {
		if tx.Details[i].ItemID != itemID {
			continue
		}
		if isPrice {
			tx.Details[i].UnitPrice = parsed
		} else {
			tx.Details[i].Quantity = parsed
		}
		tx.Amount = totalAmount(tx.Details)
		return true
	}
	return false
}

// totalAmount keeps the transaction amount consistent with its detail
// lines after any cell edit.
func totalAmount(details []ledgerapp.TransactionDetailDTO) float64 {
	var sum float64
	for _, d := range details {
		sum += d.Quantity * d.UnitPrice
	}
	return sum
}

// RunningStock reduces a day's transactions to the per-item net held
// quantity: inbound rows (bought by the business) add, outbound rows
// (sold by the business) subtract. Items never touched are omitted.
func RunningStock(txs []ledgerapp.TransactionResponse) []ledgerapp.StockQuantityResponse {
	net := make(map[int64]float64)
	for _, tx := range txs {
		sign := float64(0)
		switch {
		case tx.Buyer == ledger.Self:
			sign = 1
		case tx.Seller == ledger.Self:
			sign = -1
		default:
			continue
		}
		for _, d := range tx.Details {
			net[d.ItemID] += sign * d.Quantity
		}
	}
	out := make([]ledgerapp.StockQuantityResponse, 0, len(net))
	for itemID, quantity := range net {
		out = append(out, ledgerapp.StockQuantityResponse{ItemID: itemID, Quantity: quantity})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

func sortedItems(items []ledgerapp.ItemResponse) []ledgerapp.ItemResponse {
	sorted := make([]ledgerapp.ItemResponse, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return sorted
}
