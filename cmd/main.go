package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"salewatch/internal/config"
	"salewatch/internal/domain/service/deal"
	"salewatch/internal/domain/service/sale"
	"salewatch/internal/infrastructure/notifier"
	"salewatch/internal/infrastructure/persistence"
	"salewatch/internal/infrastructure/shopify"
	"salewatch/internal/worker"
	"salewatch/pkg/contextx"
)

// Одноразовый режим: один Check и выход.
// Под cron или CI-раннер, где процессу жить незачем.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.TimeOnly,
	}))
	slog.SetDefault(log)

	if err := run(ctx, log); err != nil {
		log.Error("check failed", "error", err)
		os.Exit(1)
	}

	log.Info("check finished")
}

func run(ctx context.Context, log *slog.Logger) error {
	ctx = contextx.WithLogger(ctx, log)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

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
		persistence.NewFileStateRepository(cfg.Watch.StateFile),
		alertBot,
		deal.NewExtractor(cfg.Store.BaseURL).WithFallbackTitle(cfg.Watch.FallbackTitle),
		sale.NewMachine().WithSaleEndNotice(cfg.Watch.NotifySaleEnd),
		sale.NewComposer(cfg.Store.BaseURL+"/", cfg.Watch.TopN),
	).WithRetryPolicy(cfg.Watch.MaxAttempts, cfg.Watch.RetryBackoff)

	return watcher.Check(ctx)
}
