package usecases

import (
	"context"

	"helpdesk/internal/domain/guide"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateGuideUseCase struct {
	guideRepo    guide.GuideRepository
	categoryRepo guide.CategoryRepository
	logger       logger.Interface
}

func NewCreateGuideUseCase(
	guideRepo guide.GuideRepository,
	categoryRepo guide.CategoryRepository,
	logger logger.Interface,
) *CreateGuideUseCase {
	return &CreateGuideUseCase{
		guideRepo:    guideRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

type CreateGuideCommand struct {
	CategoryID uint
	Title      string
	// Slug is optional; empty derives it from the title.
	Slug      string
	Problem   string
	Solutions []string
	SortOrder int
}

type CreateGuideResult struct {
	Guide *guide.Guide
}

func (uc *CreateGuideUseCase) Execute(ctx context.Context, cmd CreateGuideCommand) (*CreateGuideResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	if _, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID); err != nil {
		return nil, err
	}

	g, err := guide.NewGuide(cmd.CategoryID, cmd.Title, cmd.Slug, cmd.Problem, cmd.Solutions, cmd.SortOrder)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.guideRepo.Save(ctx, g); err != nil {
		uc.logger.Errorw("failed to save guide", "slug", g.Slug(), "error", err)
		return nil, err
	}

	uc.logger.Infow("guide created", "guide_id", g.ID(), "slug", g.Slug())

	return &CreateGuideResult{Guide: g}, nil
}

func (uc *CreateGuideUseCase) validateCommand(cmd CreateGuideCommand) error {
	if cmd.CategoryID == 0 {
		return apperrors.NewValidationError("Category ID is required")
	}
	if cmd.Title == "" {
		return apperrors.NewValidationError("Title is required")
	}
	if cmd.Problem == "" {
		return apperrors.NewValidationError("Problem is required")
	}
	return nil
}
