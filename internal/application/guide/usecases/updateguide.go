package usecases

import (
	"context"

	"helpdesk/internal/domain/guide"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateGuideUseCase struct {
	guideRepo    guide.GuideRepository
	categoryRepo guide.CategoryRepository
	logger       logger.Interface
}

func NewUpdateGuideUseCase(
	guideRepo guide.GuideRepository,
	categoryRepo guide.CategoryRepository,
	logger logger.Interface,
) *UpdateGuideUseCase {
	return &UpdateGuideUseCase{
		guideRepo:    guideRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

type UpdateGuideCommand struct {
	GuideID    uint
	CategoryID uint
	Title      string
	Slug       string
	Problem    string
	Solutions  []string
	Active     bool
	SortOrder  int
}

type UpdateGuideResult struct {
	Guide *guide.Guide
}

func (uc *UpdateGuideUseCase) Execute(ctx context.Context, cmd UpdateGuideCommand) (*UpdateGuideResult, error) {
	if cmd.GuideID == 0 {
		return nil, apperrors.NewValidationError("Guide ID is required")
	}

	g, err := uc.guideRepo.GetByID(ctx, cmd.GuideID)
	if err != nil {
		return nil, err
	}

	if cmd.CategoryID != g.CategoryID() {
		if _, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := g.Update(cmd.CategoryID, cmd.Title, cmd.Slug, cmd.Problem, cmd.Solutions, cmd.Active, cmd.SortOrder); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.guideRepo.Update(ctx, g); err != nil {
		uc.logger.Errorw("failed to update guide", "guide_id", cmd.GuideID, "error", err)
		return nil, err
	}

	return &UpdateGuideResult{Guide: g}, nil
}
