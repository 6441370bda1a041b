package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/fyyur/internal/config"
	"github.com/GoArmGo/fyyur/internal/core/ports"
)

// Resource — то, что нужно закрыть при завершении (бд, RabbitMQ, файл лога)
type Resource struct {
	Name  string
	Close func() error
}

type App struct {
	Config   *config.Config
	logger   *slog.Logger
	router   http.Handler
	consumer ports.ListingConsumer
	// закрываются в обратном порядке
	resources []Resource
}

// NewApp собирает приложение. consumer может быть nil, тогда режим worker недоступен.
func NewApp(cfg *config.Config,
	logger *slog.Logger,
	router http.Handler,
	consumer ports.ListingConsumer,
	resources ...Resource) *App {
	return &App{
		Config:    cfg,
		logger:    logger,
		router:    router,
		consumer:  consumer,
		resources: resources,
	}
}

// LoggerIns возвращает основной логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

func (a *App) Run(ctx context.Context, mode string) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting", "mode", mode)

	var err error
	switch mode {
	case "server":
		err = runServer(ctx, a.Config, a.router, a.logger)
	case "worker":
		err = runWorker(ctx, a.consumer, a.logger)
	default:
		err = fmt.Errorf("unknown mode %q (use 'server' or 'worker')", mode)
	}

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown finished with errors", "error", closeErr)
	}
	return err
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	var errs []error
	for i := len(a.resources) - 1; i >= 0; i-- {
		res := a.resources[i]
		if err := res.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", res.Name, err))
		}
	}
	a.resources = nil
	return errors.Join(errs...)
}
