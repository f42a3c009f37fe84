package ledger

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dailyledger/backend/internal/domain/ledger"
)

// StockService computes the opening stock snapshot of a category
type StockService struct {
	stockRepo   ledger.StockRepository
	snapshots   ledger.SnapshotCache
	snapshotTTL time.Duration
	logger      *zap.Logger
}

// NewStockService creates a new StockService
func NewStockService(stockRepo ledger.StockRepository, snapshots ledger.SnapshotCache, snapshotTTL time.Duration, logger *zap.Logger) *StockService {
	return &StockService{
		stockRepo:   stockRepo,
		snapshots:   snapshots,
		snapshotTTL: snapshotTTL,
		logger:      logger,
	}
}

// Snapshot returns the per-item signed net quantity of the category as of
// the latest transaction date strictly before the cutoff. An empty date
// means today. With no prior transactions the snapshot is empty, not an
// error. Future-dated transactions never leak into the snapshot.
func (s *StockService) Snapshot(ctx context.Context, categoryID int64, dateStr string) ([]StockQuantityResponse, error) {
	cutoff, err := parseBusinessDate(dateStr)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cacheGet(ctx, categoryID, cutoff); ok {
		return toStockResponses(cached), nil
	}

	latest, err := s.stockRepo.LatestDateBefore(ctx, categoryID, cutoff)
	if err != nil {
		return nil, err
	}
	if latest.IsZero() {
		return []StockQuantityResponse{}, nil
	}

	quantities, err := s.stockRepo.SignedQuantities(ctx, categoryID, latest)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, categoryID, cutoff, quantities)

	return toStockResponses(quantities), nil
}

func (s *StockService) cacheGet(ctx context.Context, categoryID int64, cutoff time.Time) ([]ledger.StockQuantity, bool) {
	if s.snapshots == nil {
		return nil, false
	}
	cached, ok, err := s.snapshots.Get(ctx, categoryID, cutoff)
	if err != nil {
		s.logger.Warn("failed to read stock snapshot cache",
			zap.Int64("category_id", categoryID),
			zap.Error(err),
		)
		return nil, false
	}
	return cached, ok
}

func (s *StockService) cacheSet(ctx context.Context, categoryID int64, cutoff time.Time, quantities []ledger.StockQuantity) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Set(ctx, categoryID, cutoff, quantities, s.snapshotTTL); err != nil {
		s.logger.Warn("failed to write stock snapshot cache",
			zap.Int64("category_id", categoryID),
			zap.Error(err),
		)
	}
}
