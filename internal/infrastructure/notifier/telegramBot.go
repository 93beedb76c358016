package notifier

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"salewatch/internal/domain"
	"salewatch/pkg/errcodes"
)

// TelegramBot доставляет готовые тексты в один чат.
// Отказ доставки — ретраибельная ошибка цикла: потерянный алерт
// виден пользователю, поэтому наружу уходит DeliveryFailed.
type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	if chatID == 0 {
		return nil, domain.NewError(errcodes.InvalidChatID, "chat id is not set")
	}

	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// SendText отправляет простое текстовое сообщение с включёнными
// превью ссылок (получателю полезно видеть карточку магазина).
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return domain.WrapError(err, errcodes.DeliveryFailed, "send message")
	}

	return nil
}

// Bot отдаёт низкоуровневый клиент для транспорта команд.
func (b *TelegramBot) Bot() *telego.Bot {
	return b.bot
}
