package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

// StatisticsRepository answers the dashboard's aggregate queries over the
// tickets table. Durations are computed by the caller from raw timestamp
// pairs to stay portable across SQL dialects.
type StatisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

func (r *StatisticsRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return r.count(ctx, r.rangeQuery(ctx, from, to))
}

func (r *StatisticsRepository) CountByStatusBetween(ctx context.Context, status vo.TicketStatus, from, to time.Time) (int64, error) {
	return r.count(ctx, r.rangeQuery(ctx, from, to).Where("status = ?", status.String()))
}

func (r *StatisticsRepository) CountByPriorityBetween(ctx context.Context, priority vo.Priority, from, to time.Time) (int64, error) {
	return r.count(ctx, r.rangeQuery(ctx, from, to).Where("priority = ?", priority.String()))
}

func (r *StatisticsRepository) CountArchivedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return r.count(ctx, r.rangeQuery(ctx, from, to).Where("archived_at IS NOT NULL"))
}

func (r *StatisticsRepository) ResolutionSpansBetween(ctx context.Context, from, to time.Time) ([]ticket.ResolutionSpan, error) {
	var rows []struct {
		CreatedAt   int64
		CompletedAt int64
	}

	if err := r.rangeQuery(ctx, from, to).
		Where("status = ?", vo.StatusResolved.String()).
		Where("completed_at IS NOT NULL").
		Select("created_at", "completed_at").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load resolution spans: %w", err)
	}

	spans := make([]ticket.ResolutionSpan, len(rows))
	for i, row := range rows {
		spans[i] = ticket.ResolutionSpan{
			CreatedAt:   time.UnixMilli(row.CreatedAt),
			CompletedAt: time.UnixMilli(row.CompletedAt),
		}
	}
	return spans, nil
}

func (r *StatisticsRepository) CountCreatedOn(ctx context.Context, day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return r.CountCreatedBetween(ctx, start, start.AddDate(0, 0, 1))
}

func (r *StatisticsRepository) rangeQuery(ctx context.Context, from, to time.Time) *gorm.DB {
	tx := db.GetTxFromContext(ctx, r.db)
	return tx.
		Model(&models.TicketModel{}).
		Where("created_at >= ? AND created_at < ?", from.UnixMilli(), to.UnixMilli())
}

func (r *StatisticsRepository) count(ctx context.Context, query *gorm.DB) (int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return total, nil
}
