package usecases

import (
	"context"

	"helpdesk/internal/domain/guide"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// ListGuidesUseCase is the admin listing; unlike the public index it includes
// inactive guides.
type ListGuidesUseCase struct {
	guideRepo guide.GuideRepository
	logger    logger.Interface
}

func NewListGuidesUseCase(guideRepo guide.GuideRepository, logger logger.Interface) *ListGuidesUseCase {
	return &ListGuidesUseCase{guideRepo: guideRepo, logger: logger}
}

type ListGuidesCommand struct {
	Search     string
	CategoryID *uint
	Page       int
	PageSize   int
}

type ListGuidesResult struct {
	Guides []*guide.Guide
	Total  int64
}

func (uc *ListGuidesUseCase) Execute(ctx context.Context, cmd ListGuidesCommand) (*ListGuidesResult, error) {
	if cmd.CategoryID != nil && *cmd.CategoryID == 0 {
		return nil, apperrors.NewValidationError("Category ID cannot be zero")
	}

	guides, total, err := uc.guideRepo.List(ctx, guide.GuideFilter{
		Search:     cmd.Search,
		CategoryID: cmd.CategoryID,
		Page:       cmd.Page,
		PageSize:   cmd.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list guides", "error", err)
		return nil, err
	}

	return &ListGuidesResult{Guides: guides, Total: total}, nil
}
