package ledger

import (
	"context"

	"github.com/dailyledger/backend/internal/domain/ledger"
)

// CategoryService handles category listing and bulk creation
type CategoryService struct {
	categoryRepo ledger.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo ledger.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// ListActive returns all categories that are not soft-deleted
func (s *CategoryService) ListActive(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	return out, nil
}

// CreateBulk inserts the requested categories and returns the full
// category table, soft-deleted rows included. The unfiltered echo is what
// the admin client expects after a bulk insert.
func (s *CategoryService) CreateBulk(ctx context.Context, reqs []CreateCategoryRequest) ([]CategoryResponse, error) {
	categories := make([]ledger.Category, 0, len(reqs))
	for _, req := range reqs {
		c, err := ledger.NewCategory(req.Name, req.IsAgent)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}

	if err := s.categoryRepo.SaveAll(ctx, categories); err != nil {
		return nil, err
	}

	all, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CategoryResponse, 0, len(all))
	for i := range all {
		out = append(out, toCategoryResponse(&all[i]))
	}
	return out, nil
}
