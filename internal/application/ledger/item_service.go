package ledger

import (
	"context"

	"github.com/dailyledger/backend/internal/domain/ledger"
)

// ItemService handles item listing and creation within a category
type ItemService struct {
	itemRepo ledger.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo ledger.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// ListByCategory returns a category's items that are not soft-deleted
func (s *ItemService) ListByCategory(ctx context.Context, categoryID int64) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindActiveByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	out := make([]ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toItemResponse(&items[i]))
	}
	return out, nil
}

// Create adds one item to the category and returns the stored row
func (s *ItemService) Create(ctx context.Context, categoryID int64, req CreateItemRequest) (*ItemResponse, error) {
	item, err := ledger.NewItem(categoryID, req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	resp := toItemResponse(item)
	return &resp, nil
}
