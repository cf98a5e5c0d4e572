// Package usecases implements login session management: the "where am I
// signed in" view, IP verification and session revocation.
package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListSessionsUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewListSessionsUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *ListSessionsUseCase {
	return &ListSessionsUseCase{sessionRepo: sessionRepo, logger: logger}
}

type ListSessionsCommand struct {
	UserID uint
	// CurrentSessionID marks the session the request itself came from.
	CurrentSessionID uint
}

type SessionInfo struct {
	Session *user.LoginSession
	Current bool
}

type ListSessionsResult struct {
	Sessions []SessionInfo
}

func (uc *ListSessionsUseCase) Execute(ctx context.Context, cmd ListSessionsCommand) (*ListSessionsResult, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewValidationError("User ID is required")
	}

	sessions, err := uc.sessionRepo.GetActiveByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list sessions", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	infos := make([]SessionInfo, 0, len(sessions))
	for _, s := range sessions {
		infos = append(infos, SessionInfo{
			Session: s,
			Current: s.ID() == cmd.CurrentSessionID,
		})
	}

	return &ListSessionsResult{Sessions: infos}, nil
}
