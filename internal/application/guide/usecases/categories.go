package usecases

import (
	"context"

	"helpdesk/internal/domain/guide"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateCategoryUseCase struct {
	categoryRepo guide.CategoryRepository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo guide.CategoryRepository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

type CreateCategoryCommand struct {
	Title     string
	Icon      string
	SortOrder int
}

type CreateCategoryResult struct {
	Category *guide.Category
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*CreateCategoryResult, error) {
	c, err := guide.NewCategory(cmd.Title, cmd.Icon, cmd.SortOrder)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save guide category", "error", err)
		return nil, err
	}

	return &CreateCategoryResult{Category: c}, nil
}

type UpdateCategoryUseCase struct {
	categoryRepo guide.CategoryRepository
	logger       logger.Interface
}

func NewUpdateCategoryUseCase(categoryRepo guide.CategoryRepository, logger logger.Interface) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

type UpdateCategoryCommand struct {
	CategoryID uint
	Title      string
	Icon       string
	SortOrder  int
}

type UpdateCategoryResult struct {
	Category *guide.Category
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*UpdateCategoryResult, error) {
	if cmd.CategoryID == 0 {
		return nil, apperrors.NewValidationError("Category ID is required")
	}

	c, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := c.Update(cmd.Title, cmd.Icon, cmd.SortOrder); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update guide category", "category_id", cmd.CategoryID, "error", err)
		return nil, err
	}

	return &UpdateCategoryResult{Category: c}, nil
}

// DeleteCategoryUseCase removes an empty category. Categories still holding
// guides are refused so guides never dangle.
type DeleteCategoryUseCase struct {
	categoryRepo guide.CategoryRepository
	guideRepo    guide.GuideRepository
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(
	categoryRepo guide.CategoryRepository,
	guideRepo guide.GuideRepository,
	logger logger.Interface,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		guideRepo:    guideRepo,
		logger:       logger,
	}
}

type DeleteCategoryCommand struct {
	CategoryID uint
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, cmd DeleteCategoryCommand) error {
	if cmd.CategoryID == 0 {
		return apperrors.NewValidationError("Category ID is required")
	}

	if _, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID); err != nil {
		return err
	}

	categoryID := cmd.CategoryID
	_, total, err := uc.guideRepo.List(ctx, guide.GuideFilter{CategoryID: &categoryID, Page: 1, PageSize: 1})
	if err != nil {
		uc.logger.Errorw("failed to check category guides", "category_id", cmd.CategoryID, "error", err)
		return err
	}
	if total > 0 {
		return apperrors.NewConflictError("Category still contains guides")
	}

	if err := uc.categoryRepo.Delete(ctx, cmd.CategoryID); err != nil {
		uc.logger.Errorw("failed to delete guide category", "category_id", cmd.CategoryID, "error", err)
		return err
	}

	return nil
}
