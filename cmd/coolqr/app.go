package coolqr

import (
	"context"

	"github.com/Badsnus/coolqr/internal/adapters/cache/redis"
	"github.com/Badsnus/coolqr/internal/adapters/config"
	"github.com/Badsnus/coolqr/internal/domain/service"
	"github.com/Badsnus/coolqr/pkg/generator"
	"github.com/Badsnus/coolqr/pkg/logger"
)

type App struct {
	Config    *config.Config
	Logger    *logger.Logger
	Service   *service.QrService
	Generator *generator.QRCode

	storage *redis.Storage
}

// New wires the render service and the file generator. logger.Init must have been
// called. An unreachable redis is logged and rendering continues without a cache.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	appLogger, err := logger.Named("app")
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		Logger: appLogger,
	}

	var cache *redis.Storage
	if cfg.Redis.Enabled {
		cache, err = redis.New(ctx, cfg.Redis.Options)
		if err != nil {
			appLogger.Warnf("render cache disabled: %v", err)
		} else {
			appLogger.Infof("connected to redis at %s:%s", cfg.Redis.Options.Host, cfg.Redis.Options.Port)
			app.storage = cache
		}
	}

	qrLogger := appLogger.Named("qr")
	if cache != nil {
		app.Service = service.NewQrService(cache, cfg.QR, cfg.Redis.TTL, qrLogger.SugaredLogger)
	} else {
		app.Service = service.NewQrService(nil, cfg.QR, 0, qrLogger.SugaredLogger)
	}
	app.Generator, err = generator.NewQrCode(app.Service, cfg.OutputDir)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	return app, nil
}

func (a *App) Close() error {
	if a.storage == nil {
		return nil
	}
	return a.storage.Close()
}
