package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/notification/usecases"
	"helpdesk/internal/interfaces/dto"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type NotificationHandler struct {
	listNotificationsUseCase  *usecases.ListNotificationsUseCase
	markReadUseCase           *usecases.MarkReadUseCase
	markAllReadUseCase        *usecases.MarkAllReadUseCase
	clearNotificationsUseCase *usecases.ClearNotificationsUseCase
	logger                    logger.Interface
}

func NewNotificationHandler(
	listNotificationsUseCase *usecases.ListNotificationsUseCase,
	markReadUseCase *usecases.MarkReadUseCase,
	markAllReadUseCase *usecases.MarkAllReadUseCase,
	clearNotificationsUseCase *usecases.ClearNotificationsUseCase,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listNotificationsUseCase:  listNotificationsUseCase,
		markReadUseCase:           markReadUseCase,
		markAllReadUseCase:        markAllReadUseCase,
		clearNotificationsUseCase: clearNotificationsUseCase,
		logger:                    logger,
	}
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	result, err := h.listNotificationsUseCase.Execute(c.Request.Context(), usecases.ListNotificationsCommand{
		UserID: actor.UserID,
		Limit:  limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"notifications": dto.FromNotifications(result.Notifications),
		"unread_count":  result.UnreadCount,
	})
}

// MarkRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	notificationID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	err := h.markReadUseCase.Execute(c.Request.Context(), usecases.MarkReadCommand{
		UserID:         actor.UserID,
		NotificationID: notificationID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead handles POST /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := h.markAllReadUseCase.Execute(c.Request.Context(), usecases.MarkAllReadCommand{UserID: actor.UserID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", nil)
}

// ClearNotifications handles POST /notifications/clear
func (h *NotificationHandler) ClearNotifications(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := h.clearNotificationsUseCase.Execute(c.Request.Context(), usecases.ClearNotificationsCommand{UserID: actor.UserID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notifications cleared", nil)
}
