package dto

import (
	"helpdesk/internal/application/dashboard/usecases"
)

type StatisticsResponse struct {
	TotalCreated       int64                 `json:"total_created"`
	ByStatus           map[string]int64      `json:"by_status"`
	ByPriority         map[string]int64      `json:"by_priority"`
	Archived           int64                 `json:"archived"`
	ResolvedCount      int64                 `json:"resolved_count"`
	AvgResolutionHours float64               `json:"avg_resolution_hours"`
	DailyCreated       []usecases.DailyCount `json:"daily_created"`
}

func FromStatistics(result *usecases.StatisticsResult) StatisticsResponse {
	return StatisticsResponse{
		TotalCreated:       result.TotalCreated,
		ByStatus:           result.ByStatus,
		ByPriority:         result.ByPriority,
		Archived:           result.Archived,
		ResolvedCount:      result.ResolvedCount,
		AvgResolutionHours: result.AvgResolutionHours,
		DailyCreated:       result.DailyCreated,
	}
}
