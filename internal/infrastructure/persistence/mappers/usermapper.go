package mappers

import (
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
)

// UserMapper handles the conversion between user domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	ResetTokenToModel(t *user.PasswordResetToken) *models.PasswordResetTokenModel
	ResetTokenToDomain(model *models.PasswordResetTokenModel) *user.PasswordResetToken
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	prefs := u.Preferences()
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Division:     u.Division(),
		Position:     u.Position(),
		LastLoginIP:  u.LastLoginIP(),
		LastLoginAt:  timePtrToMillisPtr(u.LastLoginAt()),

		NotifyEmailOnTicketCreated: prefs.EmailOnTicketCreated,
		NotifyEmailOnTicketReply:   prefs.EmailOnTicketReply,
		NotifyEmailOnTicketClosed:  prefs.EmailOnTicketClosed,
		NotifyEmailOnTicketUpdated: prefs.EmailOnTicketUpdated,

		CreatedAt: timeToMillis(u.CreatedAt()),
		UpdatedAt: timeToMillis(u.UpdatedAt()),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	prefs := user.NotificationPreferences{
		EmailOnTicketCreated: model.NotifyEmailOnTicketCreated,
		EmailOnTicketReply:   model.NotifyEmailOnTicketReply,
		EmailOnTicketClosed:  model.NotifyEmailOnTicketClosed,
		EmailOnTicketUpdated: model.NotifyEmailOnTicketUpdated,
	}

	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		authorization.UserRole(model.Role),
		model.Division,
		model.Position,
		model.LastLoginIP,
		millisPtrToTimePtr(model.LastLoginAt),
		prefs,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *UserMapperImpl) ResetTokenToModel(t *user.PasswordResetToken) *models.PasswordResetTokenModel {
	return &models.PasswordResetTokenModel{
		Email:     t.Email(),
		TokenHash: t.TokenHash(),
		CreatedAt: timeToMillis(t.CreatedAt()),
		ExpiresAt: timeToMillis(t.ExpiresAt()),
	}
}

func (m *UserMapperImpl) ResetTokenToDomain(model *models.PasswordResetTokenModel) *user.PasswordResetToken {
	return user.ReconstructPasswordResetToken(
		model.Email,
		model.TokenHash,
		millisToTime(model.CreatedAt),
		millisToTime(model.ExpiresAt),
	)
}
