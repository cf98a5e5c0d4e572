package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	activitylogApp "helpdesk/internal/application/activitylog"
	activitylogUC "helpdesk/internal/application/activitylog/usecases"
	adminUC "helpdesk/internal/application/admin/usecases"
	authUC "helpdesk/internal/application/auth/usecases"
	dashboardUC "helpdesk/internal/application/dashboard/usecases"
	guideUC "helpdesk/internal/application/guide/usecases"
	notificationApp "helpdesk/internal/application/notification"
	notificationUC "helpdesk/internal/application/notification/usecases"
	sessionUC "helpdesk/internal/application/session/usecases"
	ticketUC "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/storage"
	httpRouter "helpdesk/internal/interfaces/http"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the helpdesk HTTP API with the configured database, cache and mail transport.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(mapEnvToGinMode(env))
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		manager := migration.NewManager(env)
		if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	gormDB := database.Get()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Warnw("redis unreachable at startup, login rate limiting degrades to allow-all", "error", err)
	}

	enforcer, err := permission.NewEnforcer(gormDB, log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if err := permission.SeedPolicies(enforcer, log); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}

	attachmentStore, err := storage.NewAttachmentStore(cfg.Storage.AttachmentsDir)
	if err != nil {
		return fmt.Errorf("failed to initialize attachment store: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)
	resetTokenRepo := repository.NewResetTokenRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	replyRepo := repository.NewReplyRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	activityLogRepo := repository.NewActivityLogRepository(gormDB)
	statsRepo := repository.NewStatisticsRepository(gormDB)
	guideRepo := repository.NewGuideRepository(gormDB)
	guideCategoryRepo := repository.NewGuideCategoryRepository(gormDB)

	// Infrastructure services
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		FrontendURL: cfg.Server.FrontendURL,
	})
	limiter := ratelimit.NewRedisRateLimiter(redisClient)
	loginLimit := ratelimit.RateLimitConfig{
		RequestsPerMinute: cfg.RateLimit.LoginPerMinute,
		RequestsPerHour:   cfg.RateLimit.LoginPerHour,
	}
	txManager := db.NewTransactionManager(gormDB)
	codeGenerator := ticket.NewRandomCodeGenerator()
	markdownService := markdown.NewService()

	// Cross-cutting application services
	recorder := activitylogApp.NewRecorder(activityLogRepo, log)
	dispatcher := notificationApp.NewDispatcher(userRepo, notificationRepo, emailService, log)
	resetTokenTTL := time.Duration(cfg.Auth.ResetToken.ExpiresMinutes) * time.Minute

	h := httpRouter.Handlers{
		Auth: handlers.NewAuthHandler(
			authUC.NewLoginUseCase(userRepo, sessionRepo, hasher, jwtService, limiter, loginLimit, recorder, log),
			authUC.NewRegisterUseCase(userRepo, hasher, log),
			authUC.NewLogoutUseCase(sessionRepo, recorder, log),
			authUC.NewGetProfileUseCase(userRepo, log),
			authUC.NewUpdateProfileUseCase(userRepo, log),
			authUC.NewChangePasswordUseCase(userRepo, hasher, log),
			authUC.NewForgotPasswordUseCase(userRepo, resetTokenRepo, emailService, resetTokenTTL, log),
			authUC.NewResetPasswordUseCase(userRepo, resetTokenRepo, hasher, log),
			log,
		),
		Session: handlers.NewSessionHandler(
			sessionUC.NewListSessionsUseCase(sessionRepo, log),
			sessionUC.NewVerifyIPUseCase(sessionRepo, log),
			sessionUC.NewRevokeSessionUseCase(sessionRepo, recorder, log),
			sessionUC.NewRevokeAllOthersUseCase(sessionRepo, recorder, log),
			sessionUC.NewUpdateActivityUseCase(sessionRepo, log),
			log,
		),
		Notification: handlers.NewNotificationHandler(
			notificationUC.NewListNotificationsUseCase(notificationRepo, log),
			notificationUC.NewMarkReadUseCase(notificationRepo, log),
			notificationUC.NewMarkAllReadUseCase(notificationRepo, log),
			notificationUC.NewClearNotificationsUseCase(notificationRepo, log),
			log,
		),
		Ticket: handlers.NewTicketHandler(
			ticketUC.NewCreateTicketUseCase(ticketRepo, userRepo, codeGenerator, attachmentStore, dispatcher, recorder, log),
			ticketUC.NewListTicketsUseCase(ticketRepo, log),
			ticketUC.NewGetTicketUseCase(ticketRepo, replyRepo, userRepo, log),
			ticketUC.NewUpdateTicketUseCase(ticketRepo, userRepo, attachmentStore, dispatcher, recorder, log),
			ticketUC.NewDeleteTicketUseCase(ticketRepo, replyRepo, txManager, attachmentStore, recorder, log),
			ticketUC.NewArchiveTicketUseCase(ticketRepo, recorder, log),
			ticketUC.NewAddReplyUseCase(ticketRepo, replyRepo, userRepo, txManager, attachmentStore, dispatcher, recorder, log),
			ticketUC.NewGetAttachmentUseCase(ticketRepo, replyRepo, attachmentStore, log),
			log,
		),
		AdminUser: handlers.NewAdminUserHandler(
			adminUC.NewListUsersUseCase(userRepo, log),
			adminUC.NewGetUserUseCase(userRepo, log),
			adminUC.NewCreateUserUseCase(userRepo, hasher, recorder, log),
			adminUC.NewUpdateUserUseCase(userRepo, hasher, recorder, log),
			adminUC.NewDeleteUserUseCase(userRepo, sessionRepo, resetTokenRepo, ticketRepo, replyRepo, notificationRepo, txManager, attachmentStore, recorder, log),
			adminUC.NewBulkDeleteUsersUseCase(userRepo, sessionRepo, resetTokenRepo, ticketRepo, replyRepo, notificationRepo, txManager, attachmentStore, recorder, log),
			adminUC.NewImportUsersUseCase(userRepo, hasher, recorder, log),
			log,
		),
		ActivityLog: handlers.NewActivityLogHandler(
			activitylogUC.NewListEntriesUseCase(activityLogRepo, userRepo, log),
			log,
		),
		Dashboard: handlers.NewDashboardHandler(
			dashboardUC.NewGetStatisticsUseCase(statsRepo, log),
			log,
		),
		Guide: handlers.NewGuideHandler(
			guideUC.NewListCategoriesUseCase(guideCategoryRepo, guideRepo, log),
			guideUC.NewGetGuideUseCase(guideRepo, markdownService, log),
			guideUC.NewListGuidesUseCase(guideRepo, log),
			guideUC.NewCreateGuideUseCase(guideRepo, guideCategoryRepo, log),
			guideUC.NewUpdateGuideUseCase(guideRepo, guideCategoryRepo, log),
			guideUC.NewDeleteGuideUseCase(guideRepo, log),
			guideUC.NewCreateCategoryUseCase(guideCategoryRepo, log),
			guideUC.NewUpdateCategoryUseCase(guideCategoryRepo, log),
			guideUC.NewDeleteCategoryUseCase(guideCategoryRepo, guideRepo, log),
			log,
		),
	}

	m := httpRouter.Middlewares{
		Auth:       middleware.NewAuthMiddleware(jwtService, sessionRepo, log),
		Permission: middleware.NewPermissionMiddleware(enforcer, log),
	}
	if cfg.RateLimit.Enabled {
		m.PublicRate = middleware.IPRateLimit(limiter, loginLimit, "public")
	}

	router := httpRouter.NewRouter(h, m, cfg.Server.AllowedOrigins, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
