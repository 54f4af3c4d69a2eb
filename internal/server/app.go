// Package server initializes and runs the journal server.
// It connects to the database, applies migrations, wires the services,
// and starts the HTTP server with graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmaltsev/journal/internal/logging"
	"github.com/dmaltsev/journal/internal/server/auth"
	"github.com/dmaltsev/journal/internal/server/config"
	"github.com/dmaltsev/journal/internal/server/repositories/repomanager"
	"github.com/dmaltsev/journal/internal/server/services"
	"github.com/dmaltsev/journal/internal/server/web"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
	postService *services.PostService
	sessions    *auth.Sessions
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, err := repomanager.Connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, rm, cfg)
	ps := services.NewPostService(db, rm)
	sessions := auth.NewSessions([]byte(cfg.SecretKey), cfg.SessionValidityDuration, cfg.RememberValidityDuration)

	return &App{
		config:      cfg,
		logger:      logger,
		userService: us,
		postService: ps,
		sessions:    sessions,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := web.NewServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.postService, app.sessions)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...",
		"address", app.config.EndpointAddrHTTP,
		"session_ttl", app.config.SessionValidityDuration.String(),
		"remember_ttl", app.config.RememberValidityDuration.String(),
	)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
