package usecases

import (
	"context"

	"helpdesk/internal/domain/activitylog"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// LogoutUseCase revokes the login session the access token is bound to.
type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	recorder    ActivityRecorder
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, recorder ActivityRecorder, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		recorder:    recorder,
		logger:      logger,
	}
}

type LogoutCommand struct {
	Actor     authorization.Actor
	SessionID uint
	IPAddress string
	UserAgent string
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.SessionID == 0 {
		return apperrors.NewValidationError("Session ID is required")
	}

	session, err := uc.sessionRepo.GetByID(ctx, cmd.SessionID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			// Already gone; logout is idempotent.
			return nil
		}
		uc.logger.Errorw("failed to load session for logout", "session_id", cmd.SessionID, "error", err)
		return err
	}

	if session.UserID() != cmd.Actor.UserID {
		return apperrors.NewForbiddenError("Access forbidden")
	}

	session.Revoke()
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		uc.logger.Errorw("failed to revoke session", "session_id", cmd.SessionID, "error", err)
		return err
	}

	userID := cmd.Actor.UserID
	uc.recorder.Record(ctx, &userID, activitylog.ActionLogout, "Signed out", nil, cmd.IPAddress, cmd.UserAgent)

	return nil
}
