package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/sparkleclean/sparkle/config"
	"github.com/sparkleclean/sparkle/internal/database"
	"github.com/sparkleclean/sparkle/internal/domain"
	httpHandler "github.com/sparkleclean/sparkle/internal/http"
	"github.com/sparkleclean/sparkle/internal/http/middleware"
	"github.com/sparkleclean/sparkle/internal/migrations"
	"github.com/sparkleclean/sparkle/internal/repository"
	"github.com/sparkleclean/sparkle/internal/service"
	"github.com/sparkleclean/sparkle/pkg/logger"
	"github.com/sparkleclean/sparkle/pkg/mailer"
)

// App encapsulates the application dependencies and wires them together in
// initialization order: db, mailer, repositories, services, handlers.
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB
	mailer mailer.Mailer
	mux    *http.ServeMux
	server *http.Server

	// Repositories
	userRepo        domain.UserRepository
	propertyRepo    domain.PropertyRepository
	apartmentRepo   domain.ApartmentRepository
	roomRepo        domain.RoomRepository
	checklistRepo   domain.ChecklistRepository
	supplyRepo      domain.SupplyRepository
	workSessionRepo domain.WorkSessionRepository

	// Services
	authService        domain.AuthService
	userService        domain.UserService
	propertyService    domain.PropertyService
	apartmentService   domain.ApartmentService
	roomService        domain.RoomService
	checklistService   domain.ChecklistService
	supplyService      domain.SupplyService
	workSessionService domain.WorkSessionService
	emailService       domain.EmailService
}

// AppOption configures the App
type AppOption func(*App)

// WithLogger sets a custom logger
func WithLogger(l logger.Logger) AppOption {
	return func(a *App) {
		a.logger = l
	}
}

// WithMailer sets a custom mailer, used by tests to capture outgoing mail.
func WithMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

func NewApp(cfg *config.Config, opts ...AppOption) *App {
	a := &App{
		config: cfg,
		mux:    http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logger.NewLoggerWithLevel(cfg.LogLevel)
	}
	return a
}

// InitDB connects to the database, runs pending migrations and bootstraps
// the root admin account if the roster is empty.
func (a *App) InitDB() error {
	db, err := database.Connect(&a.config.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.db = db

	manager := migrations.NewManager(a.logger)
	if err := manager.RunMigrations(context.Background(), db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (a *App) InitMailer() error {
	if a.mailer != nil {
		return nil
	}
	if !a.config.SMTP.IsConfigured() {
		a.logger.Info("SMTP not configured, using console mailer")
		a.mailer = mailer.NewConsoleMailer()
		return nil
	}
	a.mailer = mailer.NewSMTPMailer(&mailer.Config{
		SMTPHost:     a.config.SMTP.Host,
		SMTPPort:     a.config.SMTP.Port,
		SMTPUsername: a.config.SMTP.Username,
		SMTPPassword: a.config.SMTP.Password,
		FromEmail:    a.config.SMTP.FromEmail,
		FromName:     a.config.SMTP.FromName,
	})
	return nil
}

func (a *App) InitRepositories() error {
	a.userRepo = repository.NewUserRepository(a.db)
	a.propertyRepo = repository.NewPropertyRepository(a.db)
	a.apartmentRepo = repository.NewApartmentRepository(a.db)
	a.roomRepo = repository.NewRoomRepository(a.db)
	a.checklistRepo = repository.NewChecklistRepository(a.db)
	a.supplyRepo = repository.NewSupplyRepository(a.db)
	a.workSessionRepo = repository.NewWorkSessionRepository(a.db)
	return nil
}

func (a *App) InitServices() error {
	a.authService = service.NewAuthService(a.userRepo, a.config.Auth.SecretKey, a.config.Auth.TokenExpiry, a.logger)
	a.userService = service.NewUserService(a.userRepo, a.mailer, a.logger)
	a.propertyService = service.NewPropertyService(a.propertyRepo, a.logger)
	a.apartmentService = service.NewApartmentService(a.apartmentRepo, a.propertyRepo, a.logger)
	a.roomService = service.NewRoomService(a.roomRepo, a.apartmentRepo, a.logger)
	a.checklistService = service.NewChecklistService(a.checklistRepo, a.apartmentRepo, a.logger)
	a.supplyService = service.NewSupplyService(a.supplyRepo, a.apartmentRepo, a.logger)
	a.workSessionService = service.NewWorkSessionService(a.workSessionRepo, a.apartmentRepo, a.logger)
	a.emailService = service.NewEmailService(a.mailer, a.config.SMTP.IsConfigured(), a.logger)

	return database.BootstrapRootAdmin(context.Background(), a.userRepo, a.config.RootEmail, a.logger)
}

func (a *App) InitHandlers() error {
	auth := middleware.NewAuthMiddleware(a.authService)

	httpHandler.NewRootHandler(a.config.Version, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewAuthHandler(a.authService, a.userService, a.logger).RegisterRoutes(a.mux, auth)
	httpHandler.NewUserHandler(a.userService, a.logger).RegisterRoutes(a.mux, auth)
	httpHandler.NewPropertyHandler(a.propertyService, a.logger).RegisterRoutes(a.mux, auth)
	httpHandler.NewApartmentHandler(a.apartmentService, a.logger).RegisterRoutes(a.mux, auth)
	httpHandler.NewRoomHandler(a.roomService, a.logger).RegisterRoutes(a.mux, auth)
	httpHandler.NewChecklistHandler(a.checklistService, a.logger).RegisterRoutes(a.mux, auth)
	httpHandler.NewSupplyHandler(a.supplyService, a.logger).RegisterRoutes(a.mux, auth)
	httpHandler.NewWorkSessionHandler(a.workSessionService, a.logger).RegisterRoutes(a.mux, auth)
	httpHandler.NewEmailHandler(a.emailService, a.logger).RegisterRoutes(a.mux, auth)

	return nil
}

// Initialize runs all initialization steps in order.
func (a *App) Initialize() error {
	if err := a.InitDB(); err != nil {
		return err
	}
	if err := a.InitMailer(); err != nil {
		return err
	}
	if err := a.InitRepositories(); err != nil {
		return err
	}
	if err := a.InitServices(); err != nil {
		return err
	}
	return a.InitHandlers()
}

// Start runs the HTTP server. It blocks until the server stops.
func (a *App) Start() error {
	var handler http.Handler = a.mux
	handler = middleware.CORSMiddleware(a.config.CORSOrigins)(handler)
	handler = middleware.LoggingMiddleware(a.logger)(handler)

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).Info("Server starting")

	a.server = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return a.server.ListenAndServe()
}

// Shutdown gracefully stops the server and closes the database.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown")

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	a.logger.Info("Shutdown complete")
	return nil
}

// GetMux exposes the router for handler tests.
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB exposes the database handle for integration tests.
func (a *App) GetDB() *sql.DB {
	return a.db
}
