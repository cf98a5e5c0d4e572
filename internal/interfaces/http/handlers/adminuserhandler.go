package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/admin/usecases"
	"helpdesk/internal/interfaces/dto"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// AdminUserHandler is the admin-only user directory: CRUD, CSV import and
// cascading deletes.
type AdminUserHandler struct {
	listUsersUseCase       *usecases.ListUsersUseCase
	getUserUseCase         *usecases.GetUserUseCase
	createUserUseCase      *usecases.CreateUserUseCase
	updateUserUseCase      *usecases.UpdateUserUseCase
	deleteUserUseCase      *usecases.DeleteUserUseCase
	bulkDeleteUsersUseCase *usecases.BulkDeleteUsersUseCase
	importUsersUseCase     *usecases.ImportUsersUseCase
	logger                 logger.Interface
}

func NewAdminUserHandler(
	listUsersUseCase *usecases.ListUsersUseCase,
	getUserUseCase *usecases.GetUserUseCase,
	createUserUseCase *usecases.CreateUserUseCase,
	updateUserUseCase *usecases.UpdateUserUseCase,
	deleteUserUseCase *usecases.DeleteUserUseCase,
	bulkDeleteUsersUseCase *usecases.BulkDeleteUsersUseCase,
	importUsersUseCase *usecases.ImportUsersUseCase,
	logger logger.Interface,
) *AdminUserHandler {
	return &AdminUserHandler{
		listUsersUseCase:       listUsersUseCase,
		getUserUseCase:         getUserUseCase,
		createUserUseCase:      createUserUseCase,
		updateUserUseCase:      updateUserUseCase,
		deleteUserUseCase:      deleteUserUseCase,
		bulkDeleteUsersUseCase: bulkDeleteUsersUseCase,
		importUsersUseCase:     importUsersUseCase,
		logger:                 logger,
	}
}

// ListUsers handles GET /admin/users
func (h *AdminUserHandler) ListUsers(c *gin.Context) {
	page := utils.ParsePagination(c)

	result, err := h.listUsersUseCase.Execute(c.Request.Context(), usecases.ListUsersCommand{
		Search:   c.Query("search"),
		Role:     c.Query("role"),
		Page:     page.Page,
		PageSize: page.PerPage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, "", dto.FromUsers(result.Users), result.Total, page.Page, page.PerPage)
}

// GetUser handles GET /admin/users/:id
func (h *AdminUserHandler) GetUser(c *gin.Context) {
	userID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	result, err := h.getUserUseCase.Execute(c.Request.Context(), usecases.GetUserCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.FromUser(result.User))
}

type createUserRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Role     string  `json:"role" binding:"required,oneof=user admin"`
	Division *string `json:"division"`
	Position *string `json:"position"`
}

// CreateUser handles POST /admin/users
func (h *AdminUserHandler) CreateUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUserUseCase.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Actor:     actor,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Division:  req.Division,
		Position:  req.Position,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "User created", dto.FromUser(result.User))
}

type updateUserRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Role     string  `json:"role" binding:"required,oneof=user admin"`
	Division *string `json:"division"`
	Position *string `json:"position"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

// UpdateUser handles PUT /admin/users/:id
func (h *AdminUserHandler) UpdateUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	userID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateUserUseCase.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		Actor:     actor,
		UserID:    userID,
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Division:  req.Division,
		Position:  req.Position,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated", dto.FromUser(result.User))
}

// DeleteUser handles DELETE /admin/users/:id
func (h *AdminUserHandler) DeleteUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	userID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	err := h.deleteUserUseCase.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		Actor:     actor,
		UserID:    userID,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted", nil)
}

type bulkDeleteUsersRequest struct {
	UserIDs []uint `json:"user_ids" binding:"required,min=1"`
}

// BulkDeleteUsers handles DELETE /admin/users/bulk
func (h *AdminUserHandler) BulkDeleteUsers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req bulkDeleteUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.bulkDeleteUsersUseCase.Execute(c.Request.Context(), usecases.BulkDeleteUsersCommand{
		Actor:     actor,
		UserIDs:   req.UserIDs,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Users deleted", gin.H{"deleted_count": result.DeletedCount})
}

// ImportUsers handles POST /admin/users/import
func (h *AdminUserHandler) ImportUsers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, "CSV file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded CSV", "error", err)
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.importUsersUseCase.Execute(c.Request.Context(), usecases.ImportUsersCommand{
		Actor:     actor,
		Reader:    file,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Import completed", gin.H{
		"created_count": result.CreatedCount,
		"errors":        result.Errors,
	})
}

// ImportTemplate handles GET /admin/users/import/template. The template is a
// static header row matching what the importer expects.
func (h *AdminUserHandler) ImportTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="users_import_template.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(usecases.ImportTemplateCSV))
}
