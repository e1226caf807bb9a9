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

	"deliverydesk/cmd"
	"deliverydesk/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLogger := logger.New(logger.Options{
		ServiceName: "deliverydesk",
		Level:       logger.ParseLevel(configs.LogLevel),
		Format:      configs.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, configs, appLogger)
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			appLogger.Error(context.Background(), "close store", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err := startWebServer(ctx, app, configs.HTTPPort); err != nil {
		appLogger.Error(context.Background(), "web server", err)
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) error {
	e := echo.New()
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	if err := app.CreateServer().Register(e, app.MetricsHandler()); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		app.Logger().Info(ctx, "listening on :"+port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
