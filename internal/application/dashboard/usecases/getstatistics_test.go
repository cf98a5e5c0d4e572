package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/logger"
)

type mockStatsRepo struct {
	ticket.StatisticsRepository
	statusCounts   map[vo.TicketStatus]int64
	priorityCounts map[vo.Priority]int64
	spans          []ticket.ResolutionSpan
	dailyCounts    map[string]int64
}

func (m *mockStatsRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	for _, c := range m.statusCounts {
		total += c
	}
	return total, nil
}

func (m *mockStatsRepo) CountByStatusBetween(ctx context.Context, status vo.TicketStatus, from, to time.Time) (int64, error) {
	return m.statusCounts[status], nil
}

func (m *mockStatsRepo) CountByPriorityBetween(ctx context.Context, priority vo.Priority, from, to time.Time) (int64, error) {
	return m.priorityCounts[priority], nil
}

func (m *mockStatsRepo) CountArchivedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return 2, nil
}

func (m *mockStatsRepo) ResolutionSpansBetween(ctx context.Context, from, to time.Time) ([]ticket.ResolutionSpan, error) {
	return m.spans, nil
}

func (m *mockStatsRepo) CountCreatedOn(ctx context.Context, day time.Time) (int64, error) {
	return m.dailyCounts[day.Format("2006-01-02")], nil
}

func TestGetStatistics(t *testing.T) {
	base := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	repo := &mockStatsRepo{
		statusCounts: map[vo.TicketStatus]int64{
			vo.StatusOpen:       3,
			vo.StatusOnProgress: 2,
			vo.StatusResolved:   4,
			vo.StatusRejected:   1,
		},
		priorityCounts: map[vo.Priority]int64{
			vo.PriorityLow:    5,
			vo.PriorityMedium: 3,
			vo.PriorityHigh:   2,
		},
		spans: []ticket.ResolutionSpan{
			{CreatedAt: base.Add(-48 * time.Hour), CompletedAt: base.Add(-24 * time.Hour)}, // 24h
			{CreatedAt: base.Add(-60 * time.Hour), CompletedAt: base.Add(-12 * time.Hour)}, // 48h
		},
		dailyCounts: map[string]int64{
			"2026-08-15": 3,
			"2026-08-13": 1,
		},
	}

	uc := NewGetStatisticsUseCase(repo, logger.NewLogger())
	uc.now = func() time.Time { return base }

	result, err := uc.Execute(context.Background(), GetStatisticsCommand{})

	require.NoError(t, err)
	assert.Equal(t, int64(10), result.TotalCreated)
	assert.Equal(t, int64(4), result.ByStatus["resolved"])
	assert.Equal(t, int64(2), result.ByPriority["high"])
	assert.Equal(t, int64(2), result.Archived)
	assert.Equal(t, int64(2), result.ResolvedCount)
	assert.InDelta(t, 36.0, result.AvgResolutionHours, 0.001)

	require.Len(t, result.DailyCreated, trendDays)
	assert.Equal(t, "2026-08-09", result.DailyCreated[0].Date)
	assert.Equal(t, "2026-08-15", result.DailyCreated[6].Date)
	assert.Equal(t, int64(3), result.DailyCreated[6].Count)
	assert.Equal(t, int64(1), result.DailyCreated[4].Count)
}

func TestAverageResolutionHoursEmpty(t *testing.T) {
	assert.Equal(t, 0.0, averageResolutionHours(nil))
}
