package api

import (
	"context"
	"errors"

	"backoffice/src/api/handlers"
	"backoffice/src/config"
	"backoffice/src/database"
	"backoffice/src/repositories"
	"backoffice/src/sessions"
	aws_handler "backoffice/src/utils/aws"
	redis_utils "backoffice/src/utils/redis"
	"backoffice/src/utils/render"

	"github.com/sirupsen/logrus"
)

const sessionKeyPrefix = "backoffice:session:"

// App holds the long lived pieces built at start up. main schedules the
// reaper over them and closes them on shutdown.
type App struct {
	Server    *Server
	Tenants   *database.TenantRegistry
	Directory *database.CachedDirectory
	Store     sessions.Store
	Limiter   *LoginLimiter

	closers []func() error
}

func Bootstrap(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*App, error) {
	app := &App{}

	controlDB, err := database.SetupControlDB(cfg.Databases.Control)
	if err != nil {
		return nil, err
	}
	if sqlDB, err := controlDB.DB(); err == nil {
		app.closers = append(app.closers, sqlDB.Close)
	}

	var secrets *aws_handler.SecretManager
	if cfg.AWS.Region != "" {
		secrets, err = aws_handler.NewSecretResolver(cfg.AWS)
		if err != nil {
			app.Close()
			return nil, err
		}
	}

	app.Directory = database.NewCachedDirectory(repositories.NewCustomerRepository(controlDB), cfg.Auth.CustomerCacheTTL)
	app.Tenants = database.NewTenantRegistry(
		app.Directory,
		database.NewTenantOpener(cfg.Databases.Tenant, secrets),
		cfg.Databases.Tenant.IdleTimeout,
	)
	app.closers = append(app.closers, app.Tenants.CloseAll)

	if cfg.Databases.Redis.Enabled() {
		redisHandler, err := redis_utils.NewRedisHandler(ctx, cfg.Databases.Redis, sessionKeyPrefix)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Store = sessions.NewRedisStore(redisHandler)
		app.closers = append(app.closers, redisHandler.Close)
		logger.Info("sessions stored in redis")
	} else {
		app.Store = sessions.NewMemoryStore()
		logger.Info("sessions stored in memory")
	}

	renderer, err := render.New()
	if err != nil {
		app.Close()
		return nil, err
	}

	manager := sessions.NewManager(cfg.Auth, cfg.Service.SecureCookies, app.Store)
	handler := handlers.NewHandler(app.Tenants, manager, renderer, cfg.Menu, cfg.Service.RequestTimeout)
	app.Limiter = NewLoginLimiter(cfg.Auth.LoginRatePerMin, cfg.Auth.LoginBurst)
	app.Server = NewServer(handler, app.Limiter, cfg.Service.AllowedOrigins, logger)
	return app, nil
}

// Close releases tenant pools, the redis client and the control database,
// in reverse order of creation.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
