package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/activitylog/usecases"
	"helpdesk/internal/interfaces/dto"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ActivityLogHandler struct {
	listEntriesUseCase *usecases.ListEntriesUseCase
	logger             logger.Interface
}

func NewActivityLogHandler(listEntriesUseCase *usecases.ListEntriesUseCase, logger logger.Interface) *ActivityLogHandler {
	return &ActivityLogHandler{
		listEntriesUseCase: listEntriesUseCase,
		logger:             logger,
	}
}

// ListActivityLogs handles GET /admin/activity-logs
func (h *ActivityLogHandler) ListActivityLogs(c *gin.Context) {
	page := utils.ParsePagination(c)

	cmd := usecases.ListEntriesCommand{
		Search:   c.Query("search"),
		Action:   c.Query("action"),
		Page:     page.Page,
		PageSize: page.PerPage,
	}
	if raw := c.Query("user_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			userID := uint(id)
			cmd.UserID = &userID
		}
	}

	result, err := h.listEntriesUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, "", dto.FromActivityLogs(result), result.Total, page.Page, page.PerPage)
}
