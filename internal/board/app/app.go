package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/driftlab/driftboard/internal/board/cache"
	"github.com/driftlab/driftboard/internal/board/cache/memory"
	"github.com/driftlab/driftboard/internal/board/cache/redis"
	httpapi "github.com/driftlab/driftboard/internal/board/http"
	"github.com/driftlab/driftboard/internal/board/mail"
	"github.com/driftlab/driftboard/internal/board/service"
	"github.com/driftlab/driftboard/internal/board/session"
	"github.com/driftlab/driftboard/internal/board/store"
	"github.com/driftlab/driftboard/internal/board/store/drivers/sqlite"
	"github.com/driftlab/driftboard/pkg/cryptox"
	"github.com/driftlab/driftboard/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the board service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	cache    cache.Cache
	sessions *session.Manager
	mailer   mail.Mailer

	// Services
	authService          *service.AuthService
	passwordResetService *service.PasswordResetService
	postService          *service.PostService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "board-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initCache(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	if err := app.initMailer(); err != nil {
		_ = app.cache.Close()
		_ = app.db.Close()
		return nil, err
	}

	app.initSessions()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("board service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down board service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Close the session cache
	if err := app.cache.Close(); err != nil {
		app.logger.Error("error closing cache", "error", err)
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("board service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initCache selects the session/reset-token cache: redis when an address is
// configured, the in-process TTL cache otherwise.
func (app *Application) initCache() error {
	if app.cfg.RedisAddr == "" {
		app.cache = memory.New()
		app.logger.Info("using in-process session cache")
		return nil
	}

	c, err := redis.New(context.Background(), app.cfg.RedisAddr, app.cfg.RedisPassword, 0)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	app.cache = c
	app.logger.Info("connected to redis", "addr", app.cfg.RedisAddr)
	return nil
}

// initMailer selects the outbound mail transport: SMTP when a host is
// configured, log-only otherwise.
func (app *Application) initMailer() error {
	if app.cfg.SMTPHost == "" {
		app.mailer = &mail.LogMailer{Logger: app.logger}
		app.logger.Info("smtp not configured, logging outbound mail")
		return nil
	}

	m, err := mail.NewClient(app.cfg.SMTPHost, app.cfg.SMTPPort, app.cfg.SMTPUser, app.cfg.SMTPPass, app.cfg.MailFrom)
	if err != nil {
		return fmt.Errorf("failed to initialize mailer: %w", err)
	}
	app.mailer = m
	return nil
}

// initSessions builds the cookie-backed session manager over the cache.
func (app *Application) initSessions() {
	hashKey := []byte(app.cfg.CookieHashKey)
	if len(hashKey) == 0 {
		// Sessions signed with a random key do not survive a restart.
		hashKey = securecookie.GenerateRandomKey(64)
		app.logger.Warn("COOKIE_HASH_KEY not set, generated an ephemeral key")
	}

	keyPairs := [][]byte{hashKey}
	if app.cfg.CookieBlockKey != "" {
		keyPairs = append(keyPairs, []byte(app.cfg.CookieBlockKey))
	}

	sessionStore := session.NewCacheStore(
		app.cache,
		app.cfg.SessionMaxAge,
		app.cfg.CookieSecure,
		keyPairs...,
	)
	app.sessions = session.NewManager(sessionStore, app.cfg.CookieName)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{Store: app.db}
	app.passwordResetService = &service.PasswordResetService{
		Store:     app.db,
		Cache:     app.cache,
		Mailer:    app.mailer,
		TokenTTL:  app.cfg.ResetTokenTTL,
		ServerURL: app.cfg.ServerURL,
	}
	app.postService = &service.PostService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.cache,
		app.sessions,
		app.cfg.CORSOrigin,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.PasswordResetService = app.passwordResetService
	router.PostService = app.postService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
