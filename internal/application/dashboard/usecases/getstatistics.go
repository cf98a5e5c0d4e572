// Package usecases aggregates the admin dashboard statistics.
package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/logger"
)

// trendDays is the length of the daily ticket creation trend, today included.
const trendDays = 7

type GetStatisticsUseCase struct {
	statsRepo ticket.StatisticsRepository
	logger    logger.Interface
	// now is swapped out in tests.
	now func() time.Time
}

func NewGetStatisticsUseCase(statsRepo ticket.StatisticsRepository, logger logger.Interface) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		statsRepo: statsRepo,
		logger:    logger,
		now:       time.Now,
	}
}

type GetStatisticsCommand struct{}

type DailyCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

// StatisticsResult covers the current calendar month except for the daily
// trend, which always spans the trailing week.
type StatisticsResult struct {
	TotalCreated       int64
	ByStatus           map[string]int64
	ByPriority         map[string]int64
	Archived           int64
	AvgResolutionHours float64
	ResolvedCount      int64
	DailyCreated       []DailyCount
}

func (uc *GetStatisticsUseCase) Execute(ctx context.Context, cmd GetStatisticsCommand) (*StatisticsResult, error) {
	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)

	result := &StatisticsResult{
		ByStatus:   make(map[string]int64, 4),
		ByPriority: make(map[string]int64, 3),
	}

	var err error
	result.TotalCreated, err = uc.statsRepo.CountCreatedBetween(ctx, monthStart, nextMonth)
	if err != nil {
		uc.logger.Errorw("failed to count created tickets", "error", err)
		return nil, err
	}

	for _, status := range []vo.TicketStatus{vo.StatusOpen, vo.StatusOnProgress, vo.StatusResolved, vo.StatusRejected} {
		count, err := uc.statsRepo.CountByStatusBetween(ctx, status, monthStart, nextMonth)
		if err != nil {
			uc.logger.Errorw("failed to count tickets by status", "status", status.String(), "error", err)
			return nil, err
		}
		result.ByStatus[status.String()] = count
	}

	for _, priority := range []vo.Priority{vo.PriorityLow, vo.PriorityMedium, vo.PriorityHigh} {
		count, err := uc.statsRepo.CountByPriorityBetween(ctx, priority, monthStart, nextMonth)
		if err != nil {
			uc.logger.Errorw("failed to count tickets by priority", "priority", priority.String(), "error", err)
			return nil, err
		}
		result.ByPriority[priority.String()] = count
	}

	result.Archived, err = uc.statsRepo.CountArchivedBetween(ctx, monthStart, nextMonth)
	if err != nil {
		uc.logger.Errorw("failed to count archived tickets", "error", err)
		return nil, err
	}

	spans, err := uc.statsRepo.ResolutionSpansBetween(ctx, monthStart, nextMonth)
	if err != nil {
		uc.logger.Errorw("failed to load resolution spans", "error", err)
		return nil, err
	}
	result.ResolvedCount = int64(len(spans))
	result.AvgResolutionHours = averageResolutionHours(spans)

	for i := trendDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		count, err := uc.statsRepo.CountCreatedOn(ctx, day)
		if err != nil {
			uc.logger.Errorw("failed to count daily tickets", "error", err)
			return nil, err
		}
		result.DailyCreated = append(result.DailyCreated, DailyCount{
			Date:  day.Format("2006-01-02"),
			Count: count,
		})
	}

	return result, nil
}

// averageResolutionHours is computed here rather than in SQL so the figure
// does not depend on dialect-specific date arithmetic.
func averageResolutionHours(spans []ticket.ResolutionSpan) float64 {
	if len(spans) == 0 {
		return 0
	}
	var total time.Duration
	for _, s := range spans {
		total += s.CompletedAt.Sub(s.CreatedAt)
	}
	return (total / time.Duration(len(spans))).Hours()
}
