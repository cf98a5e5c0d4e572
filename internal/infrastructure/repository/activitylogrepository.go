package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/activitylog"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type ActivityLogRepository struct {
	db     *gorm.DB
	mapper mappers.ActivityLogMapper
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{
		db:     db,
		mapper: mappers.NewActivityLogMapper(),
	}
}

func (r *ActivityLogRepository) Save(ctx context.Context, entry *activitylog.Entry) error {
	model, err := r.mapper.ToModel(entry)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save activity log entry: %w", err)
	}

	entry.SetID(model.ID)
	return nil
}

func (r *ActivityLogRepository) List(ctx context.Context, filter activitylog.EntryFilter) ([]*activitylog.Entry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ActivityLogModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("action LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activity log entries: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var entryModels []models.ActivityLogModel
	if err := query.Find(&entryModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list activity log entries: %w", err)
	}

	entries := make([]*activitylog.Entry, len(entryModels))
	for i := range entryModels {
		entry, err := r.mapper.ToDomain(&entryModels[i])
		if err != nil {
			return nil, 0, err
		}
		entries[i] = entry
	}

	return entries, total, nil
}
