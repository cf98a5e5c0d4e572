package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/interfaces/dto"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// AuthHandler covers login, registration, the password flows and the
// authenticated user's own profile.
type AuthHandler struct {
	loginUseCase          *usecases.LoginUseCase
	registerUseCase       *usecases.RegisterUseCase
	logoutUseCase         *usecases.LogoutUseCase
	getProfileUseCase     *usecases.GetProfileUseCase
	updateProfileUseCase  *usecases.UpdateProfileUseCase
	changePasswordUseCase *usecases.ChangePasswordUseCase
	forgotPasswordUseCase *usecases.ForgotPasswordUseCase
	resetPasswordUseCase  *usecases.ResetPasswordUseCase
	logger                logger.Interface
}

func NewAuthHandler(
	loginUseCase *usecases.LoginUseCase,
	registerUseCase *usecases.RegisterUseCase,
	logoutUseCase *usecases.LogoutUseCase,
	getProfileUseCase *usecases.GetProfileUseCase,
	updateProfileUseCase *usecases.UpdateProfileUseCase,
	changePasswordUseCase *usecases.ChangePasswordUseCase,
	forgotPasswordUseCase *usecases.ForgotPasswordUseCase,
	resetPasswordUseCase *usecases.ResetPasswordUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:          loginUseCase,
		registerUseCase:       registerUseCase,
		logoutUseCase:         logoutUseCase,
		getProfileUseCase:     getProfileUseCase,
		updateProfileUseCase:  updateProfileUseCase,
		changePasswordUseCase: changePasswordUseCase,
		forgotPasswordUseCase: forgotPasswordUseCase,
		resetPasswordUseCase:  resetPasswordUseCase,
		logger:                logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", dto.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   result.ExpiresIn,
		User:        dto.FromUser(result.User),
	})
}

type registerRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Division *string `json:"division"`
	Position *string `json:"position"`
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Division: req.Division,
		Position: req.Position,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "Registration successful", dto.FromUser(result.User))
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{
		Actor:     actor,
		SessionID: currentSessionID(c),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// GetProfile handles GET /me
func (h *AuthHandler) GetProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	result, err := h.getProfileUseCase.Execute(c.Request.Context(), usecases.GetProfileCommand{UserID: actor.UserID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.FromUser(result.User))
}

type preferencesRequest struct {
	EmailOnTicketCreated *bool `json:"email_on_ticket_created"`
	EmailOnTicketReply   *bool `json:"email_on_ticket_reply"`
	EmailOnTicketClosed  *bool `json:"email_on_ticket_closed"`
	EmailOnTicketUpdated *bool `json:"email_on_ticket_updated"`
}

type updateProfileRequest struct {
	Name        string              `json:"name" binding:"required"`
	Email       string              `json:"email" binding:"required,email"`
	Division    *string             `json:"division"`
	Position    *string             `json:"position"`
	Preferences *preferencesRequest `json:"notification_preferences"`
}

// UpdateProfile handles PATCH /me
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	cmd := usecases.UpdateProfileCommand{
		UserID:   actor.UserID,
		Name:     req.Name,
		Email:    req.Email,
		Division: req.Division,
		Position: req.Position,
	}
	if req.Preferences != nil {
		cmd.Preferences = &usecases.PreferencesInput{
			EmailOnTicketCreated: req.Preferences.EmailOnTicketCreated,
			EmailOnTicketReply:   req.Preferences.EmailOnTicketReply,
			EmailOnTicketClosed:  req.Preferences.EmailOnTicketClosed,
			EmailOnTicketUpdated: req.Preferences.EmailOnTicketUpdated,
		}
	}

	result, err := h.updateProfileUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated", dto.FromUser(result.User))
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// ChangePassword handles POST /change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	err := h.changePasswordUseCase.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:          actor.UserID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed", nil)
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword handles POST /forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	if err := h.forgotPasswordUseCase.Execute(c.Request.Context(), usecases.ForgotPasswordCommand{Email: req.Email}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Same answer whether or not the account exists.
	utils.SuccessResponse(c, http.StatusOK, "If the email exists, a reset link has been sent", nil)
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// ResetPassword handles POST /reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	err := h.resetPasswordUseCase.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		Email:       req.Email,
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password has been reset", nil)
}
