package application

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"salewatch/internal/config"
	"salewatch/internal/domain/service/deal"
	"salewatch/internal/domain/service/sale"
	"salewatch/internal/infrastructure/notifier"
	"salewatch/internal/infrastructure/persistence"
	"salewatch/internal/infrastructure/shopify"
	"salewatch/internal/transport/bot"
	"salewatch/internal/worker"
	"salewatch/pkg/application/connectors"
	"salewatch/pkg/application/modules"
	"salewatch/pkg/contextx"
)

const appName = "salewatch"

// Version подставляется через ldflags при сборке.
//
//nolint:gochecknoglobals
var Version = "dev"

// Run поднимает daemon-режим: периодический цикл наблюдения,
// probe- и metric-серверы и (опционально) командный бот.
func Run(ctx context.Context, log *slog.Logger) error {
	ctx = contextx.WithLogger(ctx, log)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	states, closeStates, err := buildStateRepository(ctx, cfg)
	if err != nil {
		return fmt.Errorf("state repository: %w", err)
	}
	defer closeStates(ctx)

	alertBot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
	if err != nil {
		return fmt.Errorf("notifier bot: %w", err)
	}

	feed, err := shopify.NewClient(cfg.Store)
	if err != nil {
		return fmt.Errorf("feed client: %w", err)
	}

	watcher := worker.NewSaleWatcher(
		feed,
		states,
		alertBot,
		deal.NewExtractor(cfg.Store.BaseURL).WithFallbackTitle(cfg.Watch.FallbackTitle),
		sale.NewMachine().WithSaleEndNotice(cfg.Watch.NotifySaleEnd),
		sale.NewComposer(cfg.Store.BaseURL+"/", cfg.Watch.TopN),
	).
		WithRetryPolicy(cfg.Watch.MaxAttempts, cfg.Watch.RetryBackoff).
		WithInterval(cfg.Watch.Interval)

	g, gCtx := errgroup.WithContext(ctx)

	modules.ProbeServer{
		Name:          appName,
		Version:       Version,
		ListenAddress: cfg.Server.ProbeListenAddress,
		StatusFn:      func() any { return watcher.Status() },
	}.Run(gCtx, g)

	modules.MetricServer{
		ListenAddress: cfg.Server.MetricListenAddress,
	}.Run(gCtx, g)

	if cfg.Bot.AdminID != 0 {
		commandBot, err := bot.New(alertBot.Bot(), watcher, cfg.Bot.AdminID)
		if err != nil {
			return fmt.Errorf("command bot: %w", err)
		}

		g.Go(func() error {
			return commandBot.Run(gCtx)
		})
	}

	g.Go(func() error {
		return watcher.Run(gCtx)
	})

	log.Info("application started")

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("application: %w", err)
	}

	log.Info("application stopped")

	return nil
}

// buildStateRepository выбирает бекенд состояния по конфигу.
// Файл — дефолт для одиночного процесса, redis — для раннеров
// без персистентного диска между запусками.
func buildStateRepository(ctx context.Context, cfg config.Config) (worker.StateRepository, func(context.Context), error) {
	switch cfg.Watch.StateBackend {
	case "redis":
		rd := &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}

		return persistence.NewRedisStateRepository(rd.Client(ctx), cfg.Watch.StateKey), rd.Close, nil
	case "file":
		return persistence.NewFileStateRepository(cfg.Watch.StateFile), func(context.Context) {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown state backend %q", cfg.Watch.StateBackend)
	}
}
