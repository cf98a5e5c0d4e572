package mappers

import (
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
)

type SessionMapper interface {
	ToModel(s *user.LoginSession) *models.LoginSessionModel
	ToDomain(model *models.LoginSessionModel) (*user.LoginSession, error)
}

type SessionMapperImpl struct{}

func NewSessionMapper() SessionMapper {
	return &SessionMapperImpl{}
}

func (m *SessionMapperImpl) ToModel(s *user.LoginSession) *models.LoginSessionModel {
	return &models.LoginSessionModel{
		ID:             s.ID(),
		UserID:         s.UserID(),
		IPAddress:      s.IPAddress(),
		DeviceName:     s.DeviceName(),
		UserAgent:      s.UserAgent(),
		LoginAt:        timeToMillis(s.LoginAt()),
		LastActivityAt: timeToMillis(s.LastActivityAt()),
		Revoked:        s.IsRevoked(),
		RevokedAt:      timePtrToMillisPtr(s.RevokedAt()),
	}
}

func (m *SessionMapperImpl) ToDomain(model *models.LoginSessionModel) (*user.LoginSession, error) {
	return user.ReconstructLoginSession(
		model.ID,
		model.UserID,
		model.IPAddress,
		model.DeviceName,
		model.UserAgent,
		millisToTime(model.LoginAt),
		millisToTime(model.LastActivityAt),
		model.Revoked,
		millisPtrToTimePtr(model.RevokedAt),
	)
}
