package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/metinatakli/movieflix/internal/auth"
	"github.com/metinatakli/movieflix/internal/catalog"
	"github.com/metinatakli/movieflix/internal/database"
	"github.com/metinatakli/movieflix/internal/repository"
	appvalidator "github.com/metinatakli/movieflix/internal/validator"
	"github.com/metinatakli/movieflix/internal/vcs"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

var (
	version = vcs.Version()
)

// storeStatus reports store connectivity for the health endpoints.
type storeStatus interface {
	Configured() bool
	Name() string
	Collections(ctx context.Context) ([]string, error)
}

type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate
	tokens    *auth.TokenManager

	store   storeStatus
	catalog *catalog.Service

	closeStore func(context.Context) error
}

func Run() error {
	// a missing .env file is fine, the environment may already be set
	_ = godotenv.Load()

	cfg, displayVersion, err := parseConfig(os.Args[1:], os.LookupEnv)
	if err != nil {
		return err
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	textHandler := slog.NewTextHandler(os.Stdout, nil)
	logger := slog.New(textHandler)

	shutdownTelemetry, err := InitTelemetry(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(textHandler, otelslog.NewHandler("github.com/metinatakli/movieflix")))
	}

	app := NewApp(cfg, logger)

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := app.Close(ctx); err != nil {
			app.logger.Error("failed to close store client", "error", err)
		}
	}()

	return app.run()
}

// NewApp wires the application from cfg. It does not touch the network;
// the store is connected on first use.
func NewApp(cfg Config, logger *slog.Logger) *Application {
	connector := database.NewConnector(database.Config{
		URI:            cfg.Mongo.URI,
		Name:           cfg.Mongo.DBName,
		MaxPoolSize:    cfg.Mongo.MaxPoolSize,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
		SocketTimeout:  cfg.Mongo.SocketTimeout,
	}, logger)

	if cfg.JWT.Secret == "" {
		logger.Warn("JWT secret not set, every request is anonymous")
	}

	service := catalog.NewService(
		repository.NewMongoProvider(connector),
		repository.NewMemoryCatalog(),
		logger,
	)

	return &Application{
		config:     cfg,
		logger:     logger,
		validator:  appvalidator.NewValidator(),
		tokens:     auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.SessionTTL),
		store:      connector,
		catalog:    service,
		closeStore: connector.Close,
	}
}

// Close disconnects the store client if one was opened.
func (app *Application) Close(ctx context.Context) error {
	return app.closeStore(ctx)
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: app.config.writeTimeout(),
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
