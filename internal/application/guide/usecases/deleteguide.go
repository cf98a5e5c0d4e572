package usecases

import (
	"context"

	"helpdesk/internal/domain/guide"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteGuideUseCase struct {
	guideRepo guide.GuideRepository
	logger    logger.Interface
}

func NewDeleteGuideUseCase(guideRepo guide.GuideRepository, logger logger.Interface) *DeleteGuideUseCase {
	return &DeleteGuideUseCase{guideRepo: guideRepo, logger: logger}
}

type DeleteGuideCommand struct {
	GuideID uint
}

func (uc *DeleteGuideUseCase) Execute(ctx context.Context, cmd DeleteGuideCommand) error {
	if cmd.GuideID == 0 {
		return apperrors.NewValidationError("Guide ID is required")
	}

	if _, err := uc.guideRepo.GetByID(ctx, cmd.GuideID); err != nil {
		return err
	}

	if err := uc.guideRepo.Delete(ctx, cmd.GuideID); err != nil {
		uc.logger.Errorw("failed to delete guide", "guide_id", cmd.GuideID, "error", err)
		return err
	}

	return nil
}
