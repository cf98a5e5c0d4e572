package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// APIResponse is the JSON envelope used by every endpoint.
type APIResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *PageMeta   `json:"meta,omitempty"`
}

// ErrorInfo describes a failure inside the envelope.
type ErrorInfo struct {
	Type    string `json:"type"`
	Details string `json:"details,omitempty"`
}

// PageMeta carries pagination info for list endpoints.
type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}

// SuccessResponse sends a success envelope with the given status code.
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{Message: message, Data: data})
}

// CreatedResponse sends a 201 envelope.
func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Message: message, Data: data})
}

// ListResponse sends a success envelope with pagination meta.
func ListResponse(c *gin.Context, message string, items interface{}, total int64, page, perPage int) {
	c.JSON(http.StatusOK, APIResponse{
		Message: message,
		Data:    items,
		Meta: &PageMeta{
			CurrentPage: page,
			LastPage:    TotalPages(total, perPage),
			PerPage:     perPage,
			Total:       total,
		},
	})
}

// ErrorResponse sends an error envelope with an explicit status code.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Message: message,
		Error:   &ErrorInfo{Type: "error"},
	})
}

// ErrorResponseWithError maps an error to the envelope. AppErrors keep their
// status and message; anything else is logged server-side and returned as an
// opaque 500 so internal details never reach the client.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, APIResponse{
			Message: appErr.Message,
			Error:   &ErrorInfo{Type: string(appErr.Type), Details: appErr.Details},
		})
		return
	}

	logger.Error("unhandled error", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, APIResponse{
		Message: constants.ErrMsgInternalServerError,
		Error:   &ErrorInfo{Type: string(errors.ErrorTypeInternal)},
	})
}
