package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskmaster/api/internal/config"
	"github.com/taskmaster/api/internal/platform/mail"
	"github.com/taskmaster/api/internal/platform/postgres"
	"github.com/taskmaster/api/internal/service"
	"github.com/taskmaster/api/internal/service/auth"
	"github.com/taskmaster/api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore         store.UserStore
	taskStore         store.TaskStore
	commentStore      store.CommentStore
	notificationStore store.NotificationStore
	revocationStore   store.RevocationStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	mailSender       mail.Sender

	taskService         *service.TaskService
	notificationService *service.NotificationService
}

// newApplication creates a new application instance with all
// dependencies initialized. It accepts the core dependencies that must
// be established before application wiring: configuration, logger and
// an open database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Stores
	app.userStore = postgres.NewUserStore(db, bcrypt.DefaultCost, logger)
	app.taskStore = postgres.NewTaskStore(db, logger)
	app.commentStore = postgres.NewCommentStore(db, logger)
	app.notificationStore = postgres.NewNotificationStore(db, logger)
	app.revocationStore = postgres.NewRevocationStore(db, logger)

	// Auth
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth, app.revocationStore)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)
	app.passwordVerifier = auth.NewBcryptVerifier()

	// Mail transport; without SMTP settings notifications stay
	// in-application only.
	if cfg.Mail.Enabled() {
		app.mailSender = mail.NewSMTPSender(cfg.Mail)
		logger.Info("SMTP mail sender initialized", "host", cfg.Mail.Host)
	} else {
		app.mailSender = mail.NewNoopSender(logger)
		logger.Info("mail disabled, assignment emails will be dropped")
	}

	// Services
	app.notificationService, err = service.NewNotificationService(
		app.notificationStore,
		app.mailSender,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}

	app.taskService, err = service.NewTaskService(
		store.NewSQLRunner(db),
		app.taskStore,
		app.userStore,
		app.notificationService,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run() error {
	router := app.setupRouter()

	if err := app.startHTTPServer(router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}
	app.logger.Info("Application shutdown completed")
}
