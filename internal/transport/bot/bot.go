package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"salewatch/internal/transport/bot/handler"
	"salewatch/internal/worker"
	"salewatch/pkg/contextx"
	"salewatch/pkg/logx"
)

// Bot принимает админские команды через long polling.
// Клиент telego общий с нотификатором: один токен — один инстанс.
type Bot struct {
	bot        *telego.Bot
	botHandler *th.BotHandler

	handler *handler.Handler
}

func New(tgBot *telego.Bot, watcher *worker.SaleWatcher, adminID int64) (*Bot, error) {
	updates, err := tgBot.UpdatesViaLongPolling(context.Background(), &telego.GetUpdatesParams{
		Timeout: 60,
	})
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}

	botHandler, err := th.NewBotHandler(tgBot, updates)
	if err != nil {
		return nil, fmt.Errorf("create bot handler: %w", err)
	}

	commandHandler := handler.New(watcher)
	commandHandler.RegisterRoutes(botHandler, adminID)

	return &Bot{
		bot:        tgBot,
		botHandler: botHandler,
		handler:    commandHandler,
	}, nil
}

// Run обрабатывает апдейты до отмены контекста.
func (b *Bot) Run(ctx context.Context) error {
	log := contextx.LoggerFromContextOrDefault(ctx)

	go func() {
		if err := b.botHandler.Start(); err != nil {
			log.Error("start bot handler", logx.Error(err))
		}
	}()

	<-ctx.Done()

	if err := b.botHandler.Stop(); err != nil {
		log.Error("stop bot handler", logx.Error(err))
	}

	return ctx.Err()
}
