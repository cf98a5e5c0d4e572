package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/user"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UpdateActivityUseCase bumps a session's last activity timestamp. The auth
// middleware calls this on every authenticated request; the explicit endpoint
// exists for clients that poll in the background.
type UpdateActivityUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewUpdateActivityUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *UpdateActivityUseCase {
	return &UpdateActivityUseCase{sessionRepo: sessionRepo, logger: logger}
}

type UpdateActivityCommand struct {
	UserID    uint
	SessionID uint
}

func (uc *UpdateActivityUseCase) Execute(ctx context.Context, cmd UpdateActivityCommand) error {
	if cmd.SessionID == 0 {
		return apperrors.NewValidationError("Session ID is required")
	}

	session, err := uc.sessionRepo.GetByID(ctx, cmd.SessionID)
	if err != nil {
		return err
	}
	if session.UserID() != cmd.UserID {
		return apperrors.NewNotFoundError("Session not found")
	}

	session.Touch(time.Now())
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		uc.logger.Warnw("failed to update session activity", "session_id", cmd.SessionID, "error", err)
		return err
	}

	return nil
}
