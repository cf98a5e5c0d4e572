package http

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
)

// Handlers aggregates every HTTP handler mounted by the router.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Session      *handlers.SessionHandler
	Notification *handlers.NotificationHandler
	Ticket       *handlers.TicketHandler
	AdminUser    *handlers.AdminUserHandler
	ActivityLog  *handlers.ActivityLogHandler
	Dashboard    *handlers.DashboardHandler
	Guide        *handlers.GuideHandler
}

// Middlewares carries the stateful middleware the router needs; the stateless
// ones (recovery, CORS, logging) are applied directly.
type Middlewares struct {
	Auth       *middleware.AuthMiddleware
	Permission *middleware.PermissionMiddleware
	PublicRate gin.HandlerFunc
}

type Router struct {
	engine         *gin.Engine
	handlers       Handlers
	middlewares    Middlewares
	allowedOrigins []string
	logger         logger.Interface
}

func NewRouter(h Handlers, m Middlewares, allowedOrigins []string, log logger.Interface) *Router {
	return &Router{
		engine:         gin.New(),
		handlers:       h,
		middlewares:    m,
		allowedOrigins: allowedOrigins,
		logger:         log,
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// SetupRoutes mounts the complete API under /api/v1.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	api := r.engine.Group("/api/v1")

	r.setupPublicRoutes(api)

	authed := api.Group("")
	authed.Use(r.middlewares.Auth.RequireAuth())

	r.setupProfileRoutes(authed)
	r.setupSessionRoutes(authed)
	r.setupNotificationRoutes(authed)
	r.setupTicketRoutes(authed)
	r.setupGuideRoutes(authed)
	r.setupAdminRoutes(authed)
}

func (r *Router) setupPublicRoutes(api *gin.RouterGroup) {
	public := api.Group("")
	if r.middlewares.PublicRate != nil {
		public.Use(r.middlewares.PublicRate)
	}

	public.POST("/login", r.handlers.Auth.Login)
	public.POST("/register", r.handlers.Auth.Register)
	public.POST("/forgot-password", r.handlers.Auth.ForgotPassword)
	public.POST("/reset-password", r.handlers.Auth.ResetPassword)
}

func (r *Router) setupProfileRoutes(authed *gin.RouterGroup) {
	authed.GET("/me", r.handlers.Auth.GetProfile)
	authed.PATCH("/me", r.handlers.Auth.UpdateProfile)
	authed.POST("/change-password", r.handlers.Auth.ChangePassword)
	authed.POST("/logout", r.handlers.Auth.Logout)
}

func (r *Router) setupSessionRoutes(authed *gin.RouterGroup) {
	perm := r.middlewares.Permission

	sessions := authed.Group("/sessions")
	sessions.GET("", perm.RequirePermission("session", "read"), r.handlers.Session.ListSessions)
	sessions.POST("/verify-ip", perm.RequirePermission("session", "read"), r.handlers.Session.VerifyIP)
	sessions.DELETE("/:sessionId", perm.RequirePermission("session", "revoke"), r.handlers.Session.RevokeSession)
	sessions.POST("/revoke-all-others", perm.RequirePermission("session", "revoke"), r.handlers.Session.RevokeAllOthers)
	sessions.POST("/update-activity", r.handlers.Session.UpdateActivity)
}

func (r *Router) setupNotificationRoutes(authed *gin.RouterGroup) {
	perm := r.middlewares.Permission

	notifications := authed.Group("/notifications")
	notifications.GET("", perm.RequirePermission("notification", "read"), r.handlers.Notification.ListNotifications)
	notifications.POST("/:id/read", perm.RequirePermission("notification", "update"), r.handlers.Notification.MarkRead)
	notifications.POST("/read-all", perm.RequirePermission("notification", "update"), r.handlers.Notification.MarkAllRead)
	notifications.POST("/clear", perm.RequirePermission("notification", "update"), r.handlers.Notification.ClearNotifications)
}

func (r *Router) setupTicketRoutes(authed *gin.RouterGroup) {
	perm := r.middlewares.Permission

	tickets := authed.Group("/ticket")
	tickets.GET("", perm.RequirePermission("ticket", "read"), r.handlers.Ticket.ListTickets)
	tickets.POST("", perm.RequirePermission("ticket", "create"), r.handlers.Ticket.CreateTicket)
	tickets.GET("/:code", perm.RequirePermission("ticket", "read"), r.handlers.Ticket.GetTicket)
	tickets.PUT("/:code", perm.RequirePermission("ticket", "update"), r.handlers.Ticket.UpdateTicket)
	tickets.DELETE("/:code", perm.RequirePermission("ticket", "delete"), r.handlers.Ticket.DeleteTicket)
	tickets.PATCH("/:code/archive", perm.RequirePermission("ticket", "archive"), r.handlers.Ticket.ArchiveTicket)
	tickets.PATCH("/:code/unarchive", perm.RequirePermission("ticket", "archive"), r.handlers.Ticket.UnarchiveTicket)
	tickets.GET("/:code/attachment/view", perm.RequirePermission("ticket", "read"), r.handlers.Ticket.ViewTicketAttachment)
	tickets.GET("/:code/attachment/download", perm.RequirePermission("ticket", "read"), r.handlers.Ticket.DownloadTicketAttachment)

	replies := authed.Group("/ticket-reply")
	replies.POST("/:code", perm.RequirePermission("ticket", "reply"), r.handlers.Ticket.AddReply)
	replies.GET("/:code/:replyId/attachment/view", perm.RequirePermission("ticket", "read"), r.handlers.Ticket.ViewReplyAttachment)
	replies.GET("/:code/:replyId/attachment/download", perm.RequirePermission("ticket", "read"), r.handlers.Ticket.DownloadReplyAttachment)
}

func (r *Router) setupGuideRoutes(authed *gin.RouterGroup) {
	perm := r.middlewares.Permission

	guides := authed.Group("/guides")
	guides.GET("", perm.RequirePermission("guide", "read"), r.handlers.Guide.ListCategories)
	guides.GET("/:slug", perm.RequirePermission("guide", "read"), r.handlers.Guide.GetGuide)
}

func (r *Router) setupAdminRoutes(authed *gin.RouterGroup) {
	perm := r.middlewares.Permission

	admin := authed.Group("/admin")

	users := admin.Group("/users")
	users.GET("", perm.RequirePermission("user", "read"), r.handlers.AdminUser.ListUsers)
	users.POST("", perm.RequirePermission("user", "create"), r.handlers.AdminUser.CreateUser)
	users.POST("/import", perm.RequirePermission("user", "import"), r.handlers.AdminUser.ImportUsers)
	users.GET("/import/template", perm.RequirePermission("user", "import"), r.handlers.AdminUser.ImportTemplate)
	users.DELETE("/bulk", perm.RequirePermission("user", "delete"), r.handlers.AdminUser.BulkDeleteUsers)
	users.GET("/:id", perm.RequirePermission("user", "read"), r.handlers.AdminUser.GetUser)
	users.PUT("/:id", perm.RequirePermission("user", "update"), r.handlers.AdminUser.UpdateUser)
	users.DELETE("/:id", perm.RequirePermission("user", "delete"), r.handlers.AdminUser.DeleteUser)

	admin.GET("/activity-logs", perm.RequirePermission("activity_log", "read"), r.handlers.ActivityLog.ListActivityLogs)

	admin.GET("/guides", perm.RequirePermission("guide", "read"), r.handlers.Guide.ListGuides)
	admin.POST("/guides", perm.RequirePermission("guide", "create"), r.handlers.Guide.CreateGuide)
	admin.PUT("/guides/:id", perm.RequirePermission("guide", "update"), r.handlers.Guide.UpdateGuide)
	admin.DELETE("/guides/:id", perm.RequirePermission("guide", "delete"), r.handlers.Guide.DeleteGuide)
	admin.POST("/guide-categories", perm.RequirePermission("guide", "create"), r.handlers.Guide.CreateCategory)
	admin.PUT("/guide-categories/:id", perm.RequirePermission("guide", "update"), r.handlers.Guide.UpdateCategory)
	admin.DELETE("/guide-categories/:id", perm.RequirePermission("guide", "delete"), r.handlers.Guide.DeleteCategory)

	authed.GET("/dashboard/statistics", perm.RequirePermission("dashboard", "read"), r.handlers.Dashboard.GetStatistics)
}
