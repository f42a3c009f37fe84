package ledger

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/dailyledger/backend/internal/domain/ledger"
	"github.com/dailyledger/backend/internal/domain/shared"
)

// TransactionService handles the daily transaction ledger of a category
type TransactionService struct {
	transactionRepo ledger.TransactionRepository
	snapshots       ledger.SnapshotCache
	logger          *zap.Logger
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo ledger.TransactionRepository, snapshots ledger.SnapshotCache, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		snapshots:       snapshots,
		logger:          logger,
	}
}

// ListForDay returns a category's transactions on the given date, with
// details nested. An empty date means today. The filter narrows the
// listing to stock entries or orders, optionally for one counterparty.
func (s *TransactionService) ListForDay(ctx context.Context, categoryID int64, dateStr string, filter ledger.TransactionFilter) ([]TransactionResponse, error) {
	day, err := parseBusinessDate(dateStr)
	if err != nil {
		return nil, err
	}

	txs, err := s.transactionRepo.FindForDay(ctx, categoryID, day, filter)
	if err != nil {
		return nil, err
	}

	out := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, toTransactionResponse(&txs[i]))
	}
	return out, nil
}

// Create stores a new transaction with its detail lines. The submitted
// amount is stored as-is; clients keep it consistent with the details.
func (s *TransactionService) Create(ctx context.Context, categoryID int64, req CreateTransactionRequest) (*TransactionResponse, error) {
	day, err := parseBusinessDate(req.TransactionDate)
	if err != nil {
		return nil, err
	}

	tx, err := ledger.NewTransaction(categoryID, req.Buyer, req.Seller, day, toDomainDetails(req.Details))
	if err != nil {
		return nil, err
	}
	tx.Amount = decimal.NewFromFloat(req.Amount)

	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	s.invalidateSnapshots(ctx, categoryID)

	resp := toTransactionResponse(tx)
	return &resp, nil
}

// Update replaces a transaction's scalar fields and its full detail set.
// The path id must match the body id.
func (s *TransactionService) Update(ctx context.Context, categoryID, txID int64, req UpdateTransactionRequest) (*TransactionResponse, error) {
	if req.ID != txID {
		return nil, shared.ErrIDMismatch
	}

	tx, err := s.transactionRepo.FindByID(ctx, txID)
	if err != nil {
		return nil, err
	}

	if err := tx.ReplaceDetails(toDomainDetails(req.Details)); err != nil {
		return nil, err
	}
	tx.Buyer = req.Buyer
	tx.Seller = req.Seller
	tx.Amount = decimal.NewFromFloat(req.Amount)
	tx.IsShipped = req.IsShipped
	tx.IsAccounted = req.IsAccounted
	tx.Deleted = req.Deleted

	if err := s.transactionRepo.Update(ctx, tx); err != nil {
		return nil, err
	}

	s.invalidateSnapshots(ctx, categoryID)

	resp := toTransactionResponse(tx)
	return &resp, nil
}

// invalidateSnapshots drops the category's cached stock snapshots after a
// write. A cache failure only costs freshness, so it is logged and
// swallowed.
func (s *TransactionService) invalidateSnapshots(ctx context.Context, categoryID int64) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Invalidate(ctx, categoryID); err != nil {
		s.logger.Warn("failed to invalidate stock snapshots",
			zap.Int64("category_id", categoryID),
			zap.Error(err),
		)
	}
}
