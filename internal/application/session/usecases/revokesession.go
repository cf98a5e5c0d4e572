package usecases

import (
	"context"

	"helpdesk/internal/domain/activitylog"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RevokeSessionUseCase struct {
	sessionRepo user.SessionRepository
	recorder    ActivityRecorder
	logger      logger.Interface
}

func NewRevokeSessionUseCase(sessionRepo user.SessionRepository, recorder ActivityRecorder, logger logger.Interface) *RevokeSessionUseCase {
	return &RevokeSessionUseCase{
		sessionRepo: sessionRepo,
		recorder:    recorder,
		logger:      logger,
	}
}

type RevokeSessionCommand struct {
	Actor     authorization.Actor
	SessionID uint
	IPAddress string
	UserAgent string
}

func (uc *RevokeSessionUseCase) Execute(ctx context.Context, cmd RevokeSessionCommand) error {
	if cmd.SessionID == 0 {
		return apperrors.NewValidationError("Session ID is required")
	}

	session, err := uc.sessionRepo.GetByID(ctx, cmd.SessionID)
	if err != nil {
		return err
	}

	// Sessions are private to their owner; a foreign session ID reads as
	// nonexistent rather than forbidden.
	if session.UserID() != cmd.Actor.UserID {
		return apperrors.NewNotFoundError("Session not found")
	}

	session.Revoke()
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		uc.logger.Errorw("failed to revoke session", "session_id", cmd.SessionID, "error", err)
		return err
	}

	userID := cmd.Actor.UserID
	uc.recorder.Record(ctx, &userID, activitylog.ActionSessionRevoked, "Revoked a login session",
		map[string]any{"session_id": cmd.SessionID, "device": session.DeviceName()},
		cmd.IPAddress, cmd.UserAgent)

	return nil
}
