package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trippy/cmd"
	httpin "trippy/internal/adapters/in/http"
	"trippy/internal/adapters/out/postgres"
	"trippy/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("trippy: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs, err := cmd.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	appLogger, err := logger.NewLogger(configs.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = appLogger.Sync() }()

	gormDB, err := openDatabase(configs.DSN())
	if err != nil {
		return err
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, appLogger)
	if err != nil {
		return fmt.Errorf("compose application: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs.HTTPPort, appLogger)
}

func openDatabase(dsn string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return gormDB, nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, appLogger logger.Logger) error {
	server, err := app.CreateHTTPServer()
	if err != nil {
		return err
	}

	e, err := httpin.NewRouter(ctx, server, app.RouterConfig())
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("HTTP server started", "port", port)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		appLogger.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return shutdown(shutdownCtx, e)
}

func shutdown(ctx context.Context, e *echo.Echo) error {
	if err := e.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
