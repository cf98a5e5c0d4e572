package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/session/usecases"
	"helpdesk/internal/interfaces/dto"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type SessionHandler struct {
	listSessionsUseCase    *usecases.ListSessionsUseCase
	verifyIPUseCase        *usecases.VerifyIPUseCase
	revokeSessionUseCase   *usecases.RevokeSessionUseCase
	revokeAllOthersUseCase *usecases.RevokeAllOthersUseCase
	updateActivityUseCase  *usecases.UpdateActivityUseCase
	logger                 logger.Interface
}

func NewSessionHandler(
	listSessionsUseCase *usecases.ListSessionsUseCase,
	verifyIPUseCase *usecases.VerifyIPUseCase,
	revokeSessionUseCase *usecases.RevokeSessionUseCase,
	revokeAllOthersUseCase *usecases.RevokeAllOthersUseCase,
	updateActivityUseCase *usecases.UpdateActivityUseCase,
	logger logger.Interface,
) *SessionHandler {
	return &SessionHandler{
		listSessionsUseCase:    listSessionsUseCase,
		verifyIPUseCase:        verifyIPUseCase,
		revokeSessionUseCase:   revokeSessionUseCase,
		revokeAllOthersUseCase: revokeAllOthersUseCase,
		updateActivityUseCase:  updateActivityUseCase,
		logger:                 logger,
	}
}

// ListSessions handles GET /sessions
func (h *SessionHandler) ListSessions(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	result, err := h.listSessionsUseCase.Execute(c.Request.Context(), usecases.ListSessionsCommand{
		UserID:           actor.UserID,
		CurrentSessionID: currentSessionID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.FromSessions(result.Sessions))
}

// VerifyIP handles POST /sessions/verify-ip. It reports whether the caller's
// current IP matches a known active session, so the client can warn about
// logins from new locations.
func (h *SessionHandler) VerifyIP(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	result, err := h.verifyIPUseCase.Execute(c.Request.Context(), usecases.VerifyIPCommand{
		UserID:    actor.UserID,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"known_ip": result.Known})
}

// RevokeSession handles DELETE /sessions/:sessionId
func (h *SessionHandler) RevokeSession(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	sessionID, ok := parseUintParam(c, "sessionId")
	if !ok {
		return
	}

	err := h.revokeSessionUseCase.Execute(c.Request.Context(), usecases.RevokeSessionCommand{
		Actor:     actor,
		SessionID: sessionID,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Session revoked", nil)
}

// RevokeAllOthers handles POST /sessions/revoke-all-others. Sessions from the
// caller's current IP survive so the request cannot lock itself out.
func (h *SessionHandler) RevokeAllOthers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	result, err := h.revokeAllOthersUseCase.Execute(c.Request.Context(), usecases.RevokeAllOthersCommand{
		UserID:    actor.UserID,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Other sessions revoked", gin.H{"revoked_count": result.RevokedCount})
}

// UpdateActivity handles POST /sessions/update-activity
func (h *SessionHandler) UpdateActivity(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	err := h.updateActivityUseCase.Execute(c.Request.Context(), usecases.UpdateActivityCommand{
		UserID:    actor.UserID,
		SessionID: currentSessionID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", nil)
}
