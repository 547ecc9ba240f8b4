package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/cmd"
	"storefront/internal/adapters/out/smtp"
	"storefront/internal/adapters/out/sqlite"
	"storefront/internal/pkg/logging"
	"storefront/internal/telemetry"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	serviceName     = "storefront"
	serviceVersion  = "1.0.0"
	shutdownTimeout = 10 * time.Second
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, syncLogger, err := logging.New(config.LogLevel, config.LogFormat)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer func() { _ = syncLogger() }()
	slog.SetDefault(logger)

	if err := run(config, logger); err != nil {
		logger.Error("storefront stopped with error", "error", err)
		_ = syncLogger()
		os.Exit(1)
	}
}

func run(config cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider(serviceName, serviceVersion)
	if err != nil {
		return err
	}
	defer func() { _ = shutdownMeter(context.Background()) }()

	sqlDB, err := telemetry.OpenDB(sqlite.DriverName, sqlite.DSN(config.DatabasePath))
	if err != nil {
		return err
	}
	store, err := sqlite.NewStore(sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		return err
	}
	defer func() { _ = store.Close() }()

	sender, err := smtp.NewSender(smtp.Config{
		Host:     config.SMTPServer,
		Port:     config.SMTPPort,
		Username: config.SMTPLogin,
		Password: config.SMTPPassword,
		Timeout:  config.SMTPTimeout,
	})
	if err != nil {
		return err
	}
	if err := sender.Ping(ctx); err != nil {
		return err
	}

	metrics := telemetry.NewMetrics(prometheus.DefaultRegisterer)
	app, err := cmd.NewCompositionRoot(config, store, sender, metrics, logger)
	if err != nil {
		return err
	}
	telemetry.RegisterQueueDepth(prometheus.DefaultRegisterer, app.Dispatcher().Len)

	dispatchCtx, stopDispatch := context.WithCancel(context.Background())
	dispatchDone := make(chan struct{})
	go func() {
		defer close(dispatchDone)
		if err := app.Dispatcher().Run(dispatchCtx); err != nil {
			logger.Error("notification dispatcher failed", "error", err)
		}
	}()
	defer func() {
		stopDispatch()
		<-dispatchDone
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter(metricsHandler)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("storefront listening", "address", config.Address())
		if err := e.Start(config.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serveErr:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
