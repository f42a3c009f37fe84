package projection

import (
	"math"
	"sort"

	ledgerapp "github.com/dailyledger/backend/internal/application/ledger"
	"github.com/dailyledger/backend/internal/domain/ledger"
)

// Sentinel buyer rows sort after every real customer, in this relative
// order from the bottom of the table up.
var sentinelRank = map[string]int64{
	ledger.Loss:       4,
	ledger.Worker:     3,
	ledger.Transport:  2,
	ledger.Commission: 1,
}

// StockRows selects the inbound side of a day: rows where the business
// is the buyer. The carried-over balance row sorts first, the rest keep
// insertion order by id.
func StockRows(txs []ledgerapp.TransactionResponse) []ledgerapp.TransactionResponse {
	rows := filter(txs, func(tx ledgerapp.TransactionResponse) bool {
		return tx.Buyer == ledger.Self
	})
	sort.SliceStable(rows, func(i, j int) bool {
		return stockSortKey(rows[i]) < stockSortKey(rows[j])
	})
	return rows
}

// OrderRows selects the outbound side of a day: rows where the business
// is the seller. Customer rows keep id order; the loss and agent fee
// rows sink to the bottom.
func OrderRows(txs []ledgerapp.TransactionResponse) []ledgerapp.TransactionResponse {
	rows := filter(txs, func(tx ledgerapp.TransactionResponse) bool {
		return tx.Seller == ledger.Self
	})
	sort.SliceStable(rows, func(i, j int) bool {
		return orderSortKey(rows[i]) < orderSortKey(rows[j])
	})
	return rows
}

func stockSortKey(tx ledgerapp.TransactionResponse) int64 {
	if tx.Seller == ledger.Stock {
		return math.MinInt64
	}
	return tx.ID
}

func orderSortKey(tx ledgerapp.TransactionResponse) int64 {
	if rank, ok := sentinelRank[tx.Buyer]; ok {
		return math.MaxInt64 - rank
	}
	return tx.ID
}

func filter(txs []ledgerapp.TransactionResponse, keep func(ledgerapp.TransactionResponse) bool) []ledgerapp.TransactionResponse {
	out := make([]ledgerapp.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		if !tx.Deleted && keep(tx) {
			out = append(out, tx)
		}
	}
	return out
}
