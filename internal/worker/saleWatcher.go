package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rs/xid"

	"salewatch/internal/domain"
	"salewatch/internal/domain/entity"
	"salewatch/internal/domain/service/deal"
	"salewatch/internal/domain/service/sale"
	"salewatch/pkg/contextx"
	"salewatch/pkg/errcodes"
	"salewatch/pkg/logx"
)

type FeedClient interface {
	FetchProducts(ctx context.Context) ([]entity.Product, bool, error)
}

type StateRepository interface {
	Load(ctx context.Context) (entity.SaleState, error)
	Save(ctx context.Context, state entity.SaleState) error
}

type Notifier interface {
	SendText(ctx context.Context, text string) error
}

// Status — снимок последнего цикла для /ready и команды /status.
type Status struct {
	SaleActive    bool      `json:"sale_active"`
	LastSignature string    `json:"last_signature"`
	LastOutcome   string    `json:"last_outcome"`
	LastRunAt     time.Time `json:"last_run_at"`
}

// SaleWatcher гоняет цикл fetch -> extract -> rank -> decide -> notify ->
// persist и оборачивает его ограниченными ретраями на транзиентных сбоях.
type SaleWatcher struct {
	feed      FeedClient
	states    StateRepository
	notifier  Notifier
	extractor *deal.Extractor
	machine   *sale.Machine
	composer  *sale.Composer

	maxAttempts  int
	retryBackoff time.Duration
	interval     time.Duration

	mu     sync.Mutex
	status Status
}

func NewSaleWatcher(
	feed FeedClient,
	states StateRepository,
	notifier Notifier,
	extractor *deal.Extractor,
	machine *sale.Machine,
	composer *sale.Composer,
) *SaleWatcher {
	return &SaleWatcher{
		feed:         feed,
		states:       states,
		notifier:     notifier,
		extractor:    extractor,
		machine:      machine,
		composer:     composer,
		maxAttempts:  3,
		retryBackoff: 3 * time.Second,
		interval:     15 * time.Minute,
	}
}

func (w *SaleWatcher) WithRetryPolicy(maxAttempts int, backoff time.Duration) *SaleWatcher {
	if maxAttempts > 0 {
		w.maxAttempts = maxAttempts
	}
	w.retryBackoff = backoff
	return w
}

func (w *SaleWatcher) WithInterval(interval time.Duration) *SaleWatcher {
	if interval > 0 {
		w.interval = interval
	}
	return w
}

// Status возвращает снимок последнего завершённого цикла.
func (w *SaleWatcher) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Check — один «внешний» запуск: до maxAttempts попыток RunOnce.
// Транзиентные сбои (сеть, доставка, таймаут) ждут backoff*attempt и
// повторяются; всё остальное — программная ошибка, она всплывает сразу,
// чтобы не маскировать баги под сетевые морганья.
func (w *SaleWatcher) Check(ctx context.Context) error {
	for attempt := 1; ; attempt++ {
		cycleID := contextx.CycleID(xid.New().String())

		cycleCtx := contextx.WithCycleID(ctx, cycleID)
		cycleCtx = contextx.WithLogger(cycleCtx, logger(ctx).With(
			slog.String(logx.FieldCycleID, cycleID.String()),
		))

		err := w.RunOnce(cycleCtx)
		if err == nil {
			return nil
		}

		if !isTransient(err) || attempt == w.maxAttempts {
			return err
		}

		wait := w.retryBackoff * time.Duration(attempt)

		logger(ctx).Warn("transient cycle failure, retrying",
			slog.Int(logx.FieldAttempt, attempt),
			slog.Duration("backoff", wait),
			logx.Error(err),
		)

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// RunOnce — один проход цикла без ретраев.
// «Нет данных» от фида — это тихий выход: состояние не трогаем,
// попытку не тратим, тревогу не поднимаем.
func (w *SaleWatcher) RunOnce(ctx context.Context) error {
	state, err := w.states.Load(ctx)
	if err != nil {
		w.recordOutcome(state, "", outcomeError)
		return fmt.Errorf("load state: %w", err)
	}

	products, ok, err := w.feed.FetchProducts(ctx)
	if err != nil {
		w.recordOutcome(state, state.LastSignature, outcomeError)
		return fmt.Errorf("fetch products: %w", err)
	}

	if !ok {
		logger(ctx).Warn("feed gave no data, skipping cycle")
		cyclesTotal.WithLabelValues(outcomeNoData).Inc()
		w.recordOutcome(state, state.LastSignature, outcomeNoData)
		return nil
	}

	set := w.extractor.Extract(products)
	ranked := deal.Rank(set.Deals)
	signature := deal.Signature(ranked)
	saleNow := set.SaleNow()

	episode := w.machine.Next(state.SaleActive, saleNow)

	logger(ctx).Info("cycle evaluated",
		slog.Int("deals", len(set.Deals)),
		slog.Bool("sale_now", saleNow),
		slog.Bool("was_active", state.SaleActive),
		logx.Stringer("episode", episode),
	)

	if err := w.notify(ctx, episode, set, ranked); err != nil {
		w.recordOutcome(state, signature, outcomeError)
		return err
	}

	// Состояние пишется всегда, даже без эпизода — последний писатель прав.
	newState := entity.SaleState{SaleActive: saleNow, LastSignature: signature}
	if err := w.states.Save(ctx, newState); err != nil {
		w.recordOutcome(newState, signature, outcomeError)
		return fmt.Errorf("save state: %w", err)
	}

	cyclesTotal.WithLabelValues(outcomeOK).Inc()
	dealsFound.Set(float64(set.DiscountedVariants))
	w.recordOutcome(newState, signature, outcomeOK)

	return nil
}

func (w *SaleWatcher) notify(ctx context.Context, episode sale.Episode, set entity.DealSet, ranked []entity.Deal) error {
	switch episode {
	case sale.EpisodeSaleStarted:
		for _, message := range w.composer.SaleStarted(set, ranked) {
			if err := w.notifier.SendText(ctx, message); err != nil {
				return fmt.Errorf("send sale notice: %w", err)
			}
			notificationsTotal.Inc()
		}
	case sale.EpisodeSaleEnded:
		if err := w.notifier.SendText(ctx, w.composer.SaleEnded()); err != nil {
			return fmt.Errorf("send sale end notice: %w", err)
		}
		notificationsTotal.Inc()
	case sale.EpisodeNone:
	}

	return nil
}

// Run — daemon-режим: первый проход сразу, дальше по тикеру.
// Ошибка одного запуска не валит весь процесс.
func (w *SaleWatcher) Run(ctx context.Context) error {
	logger(ctx).Info("sale watcher started", slog.Duration("interval", w.interval))

	if err := w.Check(ctx); err != nil {
		logger(ctx).Error("check failed", logx.Error(err))
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("sale watcher stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := w.Check(ctx); err != nil {
				logger(ctx).Error("check failed", logx.Error(err))
			}
		}
	}
}

func (w *SaleWatcher) recordOutcome(state entity.SaleState, signature string, outcome string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.status = Status{
		SaleActive:    state.SaleActive,
		LastSignature: signature,
		LastOutcome:   outcome,
		LastRunAt:     time.Now(),
	}
}

// isTransient решает, стоит ли повторять цикл.
// Закрытый список: сетевой сбой фида, отказ доставки, таймаут.
func isTransient(err error) bool {
	code, ok := domain.GetCode(err)
	if !ok {
		return false
	}

	switch code {
	case errcodes.FeedFetchFailed, errcodes.DeliveryFailed, errcodes.TimeoutExceeded:
		return true
	default:
		return false
	}
}
