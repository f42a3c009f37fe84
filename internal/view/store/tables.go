package store

import (
	"context"
	"strconv"

	ledgerapp "github.com/dailyledger/backend/internal/application/ledger"
	"github.com/dailyledger/backend/internal/domain/ledger"
	"github.com/dailyledger/backend/internal/view/grid"
	"github.com/dailyledger/backend/internal/view/projection"
)

var stockHeaders = map[string]string{
	projection.ColumnSeller:      "貨源",
	projection.ColumnAmount:      "金額",
	projection.ColumnIsShipped:   "出貨",
	projection.ColumnIsAccounted: "入帳",
}

var orderHeaders = map[string]string{
	projection.ColumnBuyer:       "客戶",
	projection.ColumnAmount:      "金額",
	projection.ColumnIsShipped:   "出貨",
	projection.ColumnIsAccounted: "入帳",
}

var orderCellNames = map[string]string{
	ledger.Loss:       "損耗",
	ledger.Worker:     "工錢",
	ledger.Commission: "佣金",
	ledger.Transport:  "運費",
}

// StockTable builds the inbound grid for the store's day: one row per
// stock purchase, the carried-over balance row first. New rows default
// to the business buying.
func (s *Store) StockTable(ctx context.Context, items []ledgerapp.ItemResponse) *grid.Table {
	table := grid.New(grid.Config{
		Columns:        projection.Columns(items),
		IgnoredColumns: []string{projection.ColumnID, projection.ColumnBuyer, projection.ColumnDeleted},
		HeaderName: func(col string) string {
			return projection.HeaderName(col, items, stockHeaders)
		},
		CellReplace: func(value string) string {
			if value == ledger.Stock {
				return "昨日庫存"
			}
			return value
		},
		Callbacks: s.callbacks(ctx, items, ledgerapp.CreateTransactionRequest{
			Buyer: ledger.Self,
		}),
	})
	table.SetRows(projection.FlattenAll(projection.StockRows(s.Transactions()), items))
	return table
}

// OrderTable builds the outbound grid: customer rows first, the loss
// and agent fee rows at the bottom. New rows default to the business
// selling.
func (s *Store) OrderTable(ctx context.Context, items []ledgerapp.ItemResponse) *grid.Table {
	table := grid.New(grid.Config{
		Columns:        projection.Columns(items),
		IgnoredColumns: []string{projection.ColumnID, projection.ColumnSeller, projection.ColumnDeleted},
		HeaderName: func(col string) string {
			return projection.HeaderName(col, items, orderHeaders)
		},
		CellReplace: func(value string) string {
			if name, ok := orderCellNames[value]; ok {
				return name
			}
			return value
		},
		Callbacks: s.callbacks(ctx, items, ledgerapp.CreateTransactionRequest{
			Seller: ledger.Self,
		}),
	})
	table.SetRows(projection.FlattenAll(projection.OrderRows(s.Transactions()), items))
	return table
}

// callbacks binds the grid's gestures to the store. Errors surface on
// the next refresh; a failed gesture leaves the server untouched.
func (s *Store) callbacks(ctx context.Context, items []ledgerapp.ItemResponse, newRow ledgerapp.CreateTransactionRequest) grid.Callbacks {
	return grid.Callbacks{
		UpdateCell: func(rowID, column, value string) {
			txID, err := strconv.ParseInt(rowID, 10, 64)
			if err != nil {
				return
			}
			_ = s.ApplyCellEdit(ctx, txID, column, value)
		},
		RemoveRow: func(rowID string) {
			txID, err := strconv.ParseInt(rowID, 10, 64)
			if err != nil {
				return
			}
			_ = s.Remove(ctx, txID)
		},
		AddRow: func() {
			req := newRow
			req.Details = zeroDetails(items)
			_, _ = s.Create(ctx, req)
		},
	}
}
