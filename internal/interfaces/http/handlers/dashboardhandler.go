package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/dashboard/usecases"
	"helpdesk/internal/interfaces/dto"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type DashboardHandler struct {
	getStatisticsUseCase *usecases.GetStatisticsUseCase
	logger               logger.Interface
}

func NewDashboardHandler(getStatisticsUseCase *usecases.GetStatisticsUseCase, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		getStatisticsUseCase: getStatisticsUseCase,
		logger:               logger,
	}
}

// GetStatistics handles GET /dashboard/statistics
func (h *DashboardHandler) GetStatistics(c *gin.Context) {
	result, err := h.getStatisticsUseCase.Execute(c.Request.Context(), usecases.GetStatisticsCommand{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.FromStatistics(result))
}
