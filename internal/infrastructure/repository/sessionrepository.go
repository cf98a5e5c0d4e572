package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		db:     db,
		mapper: mappers.NewSessionMapper(),
	}
}

func (r *SessionRepository) Save(ctx context.Context, s *user.LoginSession) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.SetID(model.ID)
	return nil
}

func (r *SessionRepository) Update(ctx context.Context, s *user.LoginSession) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.LoginSessionModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update session: %w", result.Error)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID uint) (*user.LoginSession, error) {
	var model models.LoginSessionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SessionRepository) GetActiveByUserID(ctx context.Context, userID uint) ([]*user.LoginSession, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var sessionModels []models.LoginSessionModel
	if err := tx.
		Where("user_id = ? AND revoked = ?", userID, false).
		Order("last_activity_at DESC").
		Find(&sessionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]*user.LoginSession, len(sessionModels))
	for i := range sessionModels {
		s, err := r.mapper.ToDomain(&sessionModels[i])
		if err != nil {
			return nil, err
		}
		sessions[i] = s
	}
	return sessions, nil
}

func (r *SessionRepository) ExistsActiveByUserIP(ctx context.Context, userID uint, ipAddress string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.LoginSessionModel{}).
		Where("user_id = ? AND ip_address = ? AND revoked = ?", userID, ipAddress, false).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check session IP: %w", err)
	}
	return count > 0, nil
}

// RevokeAllExceptIP revokes every active session of the user whose IP differs
// from the given one. IP equality is the best heuristic available to identify
// "this device" since sessions carry no client-side token.
func (r *SessionRepository) RevokeAllExceptIP(ctx context.Context, userID uint, ipAddress string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	now := time.Now().UnixMilli()
	result := tx.
		Model(&models.LoginSessionModel{}).
		Where("user_id = ? AND ip_address != ? AND revoked = ?", userID, ipAddress, false).
		Updates(map[string]any{"revoked": true, "revoked_at": now})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to revoke sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *SessionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ?", userID).Delete(&models.LoginSessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete sessions by user: %w", err)
	}
	return nil
}
