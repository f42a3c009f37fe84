// Package store keeps one business day of transactions for one
// category in memory, synchronized through the ledger API. It applies
// the API's responses back onto the local set so readers always see
// what the server accepted, and seeds the fixed bookkeeping rows a day
// starts with.
package store

import (
	"context"
	"sync"

	ledgerapp "github.com/dailyledger/backend/internal/application/ledger"
	"github.com/dailyledger/backend/internal/domain/ledger"
	"github.com/dailyledger/backend/internal/view/projection"
	"github.com/dailyledger/backend/pkg/client"
)

// API is the slice of the ledger client the store needs.
type API interface {
	ListTransactions(ctx context.Context, categoryID int64, filter client.TransactionFilter) ([]ledgerapp.TransactionResponse, error)
	CreateTransaction(ctx context.Context, categoryID int64, req ledgerapp.CreateTransactionRequest) (*ledgerapp.TransactionResponse, error)
	UpdateTransaction(ctx context.Context, categoryID, txID int64, req ledgerapp.UpdateTransactionRequest) (*ledgerapp.TransactionResponse, error)
}

// Store is one category-day working set. Safe for concurrent use.
type Store struct {
	api        API
	categoryID int64
	date       string

	mu           sync.RWMutex
	transactions []ledgerapp.TransactionResponse
}

// New creates a store for one category and business day. The date is
// YYYY-MM-DD; empty means today.
func New(api API, categoryID int64, date string) *Store {
	if date == "" {
		date = ledger.Today().Format(ledger.DatePattern)
	}
	return &Store{api: api, categoryID: categoryID, date: date}
}

// Refresh replaces the working set with the server's current day.
func (s *Store) Refresh(ctx context.Context) error {
	txs, err := s.api.ListTransactions(ctx, s.categoryID, client.TransactionFilter{Date: s.date})
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.transactions = txs
	s.mu.Unlock()
	return nil
}

// Create records a new transaction and appends the stored row.
func (s *Store) Create(ctx context.Context, req ledgerapp.CreateTransactionRequest) (*ledgerapp.TransactionResponse, error) {
	if req.TransactionDate == "" {
		req.TransactionDate = s.date
	}
	created, err := s.api.CreateTransaction(ctx, s.categoryID, req)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.transactions = append(s.transactions, *created)
	s.mu.Unlock()
	return created, nil
}

// Update pushes a full transaction replacement and swaps the stored
// row for the server's result. A row the server marked deleted drops
// out of the working set.
func (s *Store) Update(ctx context.Context, req ledgerapp.UpdateTransactionRequest) (*ledgerapp.TransactionResponse, error) {
	updated, err := s.api.UpdateTransaction(ctx, s.categoryID, req.ID, req)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	kept := s.transactions[:0]
	for _, tx := range s.transactions {
		if tx.ID == updated.ID {
			tx = *updated
		}
		if !tx.Deleted {
			kept = append(kept, tx)
		}
	}
	s.transactions = kept
	s.mu.Unlock()
	return updated, nil
}

// Remove soft deletes a transaction. Unknown ids are a no-op.
func (s *Store) Remove(ctx context.Context, txID int64) error {
	tx, ok := s.find(txID)
	if !ok {
		return nil
	}
	req := updateRequest(tx)
	req.Deleted = true
	_, err := s.Update(ctx, req)
	return err
}

// ApplyCellEdit applies a single cell edit to a transaction and, when
// the edit changed anything, pushes the full row to the server.
// Unknown ids, unknown columns and unparseable values are no-ops.
func (s *Store) ApplyCellEdit(ctx context.Context, txID int64, column, value string) error {
	tx, ok := s.find(txID)
	if !ok {
		return nil
	}
	if !projection.ApplyEdit(&tx, column, value) {
		return nil
	}
	_, err := s.Update(ctx, updateRequest(tx))
	return err
}

// Transactions returns a copy of the working set in insertion order.
func (s *Store) Transactions() []ledgerapp.TransactionResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledgerapp.TransactionResponse, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// SeedDayRows creates the fixed outbound rows a day's order table
// starts with: the loss row always, and the worker, transport and
// commission fee rows for agent categories. Rows that already exist
// are left alone. Seeded rows carry a zero detail line per item so
// every cell is editable from the start.
func (s *Store) SeedDayRows(ctx context.Context, isAgent bool, items []ledgerapp.ItemResponse) error {
	buyers := []string{ledger.Loss}
	if isAgent {
		buyers = append(buyers, ledger.AgentBuyers...)
	}
	for _, buyer := range buyers {
		if s.hasOutboundBuyer(buyer) {
			continue
		}
		_, err := s.Create(ctx, ledgerapp.CreateTransactionRequest{
			Buyer:           buyer,
			Seller:          ledger.Self,
			TransactionDate: s.date,
			Details:         zeroDetails(items),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) hasOutboundBuyer(buyer string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tx := range s.transactions {
		if tx.Buyer == buyer && tx.Seller == ledger.Self {
			return true
		}
	}
	return false
}

func (s *Store) find(txID int64) (ledgerapp.TransactionResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tx := range s.transactions {
		if tx.ID == txID {
			copied := tx
			copied.Details = append([]ledgerapp.TransactionDetailDTO(nil), tx.Details...)
			return copied, true
		}
	}
	return ledgerapp.TransactionResponse{}, false
}

func updateRequest(tx ledgerapp.TransactionResponse) ledgerapp.UpdateTransactionRequest {
	return ledgerapp.UpdateTransactionRequest{
		ID:          tx.ID,
		Buyer:       tx.Buyer,
		Seller:      tx.Seller,
		Amount:      tx.Amount,
		IsShipped:   tx.IsShipped,
		IsAccounted: tx.IsAccounted,
		Deleted:     tx.Deleted,
		Details:     tx.Details,
	}
}

func zeroDetails(items []ledgerapp.ItemResponse) []ledgerapp.TransactionDetailDTO {
	details := make([]ledgerapp.TransactionDetailDTO, 0, len(items))
	for _, item := range items {
		details = append(details, ledgerapp.TransactionDetailDTO{ItemID: item.ID})
	}
	return details
}
