// Package usecases implements the self-service knowledge base: the public
// category/guide views and the admin CRUD behind them.
package usecases

import (
	"context"

	"helpdesk/internal/domain/guide"
	"helpdesk/internal/shared/logger"
)

// ListCategoriesUseCase returns the knowledge base index: every category with
// its active guides, both in display order.
type ListCategoriesUseCase struct {
	categoryRepo guide.CategoryRepository
	guideRepo    guide.GuideRepository
	logger       logger.Interface
}

func NewListCategoriesUseCase(
	categoryRepo guide.CategoryRepository,
	guideRepo guide.GuideRepository,
	logger logger.Interface,
) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		guideRepo:    guideRepo,
		logger:       logger,
	}
}

type ListCategoriesCommand struct{}

type CategoryWithGuides struct {
	Category *guide.Category
	Guides   []*guide.Guide
}

type ListCategoriesResult struct {
	Categories []CategoryWithGuides
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, cmd ListCategoriesCommand) (*ListCategoriesResult, error) {
	categories, err := uc.categoryRepo.ListOrdered(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list guide categories", "error", err)
		return nil, err
	}

	result := &ListCategoriesResult{Categories: make([]CategoryWithGuides, 0, len(categories))}
	for _, c := range categories {
		guides, err := uc.guideRepo.GetActiveByCategoryID(ctx, c.ID())
		if err != nil {
			uc.logger.Errorw("failed to list guides for category", "category_id", c.ID(), "error", err)
			return nil, err
		}
		result.Categories = append(result.Categories, CategoryWithGuides{Category: c, Guides: guides})
	}

	return result, nil
}
