package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"goldquote-service/internal/application"
	"goldquote-service/internal/config"
	"goldquote-service/internal/infrastructure/httpx"
	"goldquote-service/internal/infrastructure/logx"
	"goldquote-service/internal/infrastructure/provider"
	"goldquote-service/internal/tools"

	"go.uber.org/zap"
)

var ErrUnknownProvider = errors.New("unknown provider")

// App is the object graph shared by every entrypoint.
type App struct {
	Config   config.Config
	Log      *zap.Logger
	Service  *application.GoldService
	Registry *tools.Registry
}

func ProvideLogger() *zap.Logger { return logx.L() }

func ProvideConfig() config.Config { return config.Load() }

// ProvideQuoteSource picks the quote source named by cfg.Provider.
func ProvideQuoteSource(cfg config.Config, log *zap.Logger) (application.QuoteSource, error) {
	switch cfg.Provider {
	case "bot", "":
		return &provider.BankOfTaiwanProvider{
			Client: httpx.New(cfg.FetchTimeout, cfg.FetchUserAgent, cfg.FetchRetries),
			Log:    log,
			Now:    time.Now,
		}, nil
	case "fake":
		return provider.NewFake(cfg.FakeSellingPrice, cfg.FakeBuyingPrice), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownProvider, cfg.Provider)
	}
}

func ProvideGoldService(src application.QuoteSource, log *zap.Logger) *application.GoldService {
	return application.NewGoldService(src, application.WithLogger(log))
}

func ProvideRegistry(svc *application.GoldService, log *zap.Logger) *tools.Registry {
	return tools.NewRegistry(svc, log)
}

// Build wires an App from cfg.
func Build(cfg config.Config, log *zap.Logger) (App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	src, err := ProvideQuoteSource(cfg, log)
	if err != nil {
		return App{}, err
	}
	svc := ProvideGoldService(src, log)
	log.Info("bootstrap.ready",
		zap.String("env", cfg.Env),
		zap.String("provider", cfg.Provider),
		zap.Duration("fetch_timeout", cfg.FetchTimeout),
		zap.Int("fetch_retries", cfg.FetchRetries),
	)
	return App{Config: cfg, Log: log, Service: svc, Registry: ProvideRegistry(svc, log)}, nil
}
