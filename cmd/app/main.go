package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"foodorders/cmd"
	"foodorders/internal/platform/observability"

	"github.com/labstack/gommon/log"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	instruments, shutdownTelemetry, err := observability.Init(ctx, observability.Options{
		ServiceName:    config.ServiceName,
		LogLevel:       config.LogLevel,
		TracesExporter: config.TracesExporter,
		OTLPEndpoint:   config.OTLPEndpoint,
	})
	if err != nil {
		log.Fatalf("Error initializing observability: %v", err)
	}

	app := cmd.NewCompositionRoot(config, instruments)
	logger := app.Logger()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	serveErr := startWebServer(ctx, app, config)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	jobManager.StopAll()
	if err = shutdownTelemetry(shutdownCtx); err != nil {
		logger.Error("Telemetry shutdown failed", "error", err)
	}
	if serveErr != nil {
		log.Fatalf("Web server failed: %v", serveErr)
	}
}

// startWebServer serves HTTP until ctx is cancelled, then shuts the server down
// gracefully.
func startWebServer(ctx context.Context, app cmd.CompositionRoot, config cmd.Config) error {
	e, err := app.CreateRouter()
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		app.Logger().Info("Server running", "address", config.Address())
		if err := e.Start(config.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
