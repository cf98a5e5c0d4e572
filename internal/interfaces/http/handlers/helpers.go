package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/utils"
)

// currentActor reads the authenticated caller from the gin context. It only
// fails when a handler is mounted without the auth middleware, which is a
// wiring bug rather than a client error.
func currentActor(c *gin.Context) (authorization.Actor, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return authorization.Actor{}, false
	}

	id, ok := userID.(uint)
	if !ok {
		utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
		return authorization.Actor{}, false
	}

	return authorization.Actor{
		UserID: id,
		Role:   authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole)),
	}, true
}

func currentSessionID(c *gin.Context) uint {
	if v, ok := c.Get(constants.ContextKeySessionID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// parseUintParam parses a numeric path parameter, answering 404 on garbage
// since a non-numeric ID can never name an existing resource.
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusNotFound, constants.ErrMsgResourceNotFound)
		return 0, false
	}
	return uint(id), true
}
