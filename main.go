package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice/src/api"
	"backoffice/src/config"
	"backoffice/src/scheduler"
	"backoffice/src/sessions"
	"backoffice/src/utils"

	"github.com/sirupsen/logrus"
)

const limiterIdle = 10 * time.Minute

func main() {
	cfg, err := config.LoadConfig("./settings", os.Getenv("ENV"))
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	logger := utils.NewLogger(utils.ParseLevel(cfg.Logging.Level), cfg.Logging.ToFile, cfg.Logging.FilePath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errC, err := run(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Error("Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		logger.WithError(err).Error("Error while running")
	}
}

func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (<-chan error, error) {
	app, err := api.Bootstrap(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	reaper := scheduler.NewReaper(app.Tenants, logger)
	reaper.AddPurger("customers", app.Directory)
	reaper.AddPurger("login_limiter", scheduler.PurgerFunc(func() int {
		return app.Limiter.Cleanup(limiterIdle)
	}))
	if memory, ok := app.Store.(*sessions.MemoryStore); ok {
		reaper.AddPurger("sessions", memory)
	}
	task, err := scheduler.NewScheduledTask(cfg.Databases.Tenant.ReaperSchedule, reaper.Run, logger)
	if err != nil {
		app.Close()
		return nil, err
	}

	httpServer := api.NewHTTPServer(app.Server, cfg.Service)
	errC := make(chan error, 1)

	go func() {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		task.Cancel()
		err := httpServer.Shutdown(shutdownCtx)
		if closeErr := app.Close(); closeErr != nil {
			logger.WithError(closeErr).Warn("Error while closing resources")
		}
		errC <- err
	}()

	go func() {
		logger.WithField("port", cfg.Service.Port).Info("Starting server")

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()
	return errC, nil
}
