package constants

const (
	// Environment names
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Context keys set by the auth middleware
	ContextKeyUserID    = "user_id"
	ContextKeySessionID = "session_id"
	ContextKeyUserRole  = "user_role"

	// HTTP headers
	HeaderAuthorization = "Authorization"
	HeaderUserAgent     = "User-Agent"

	// Table names
	TableUsers               = "users"
	TableTickets             = "tickets"
	TableTicketReplies       = "ticket_replies"
	TableNotifications       = "notifications"
	TableActivityLogs        = "activity_logs"
	TableLoginSessions       = "user_login_sessions"
	TablePasswordResetTokens = "password_reset_tokens"
	TableGuides              = "guides"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
