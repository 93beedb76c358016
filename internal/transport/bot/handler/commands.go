package handler

import (
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"salewatch/internal/transport/bot/view"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	status := h.watcher.Status()

	saleText := "🔴 нет"
	if status.SaleActive {
		saleText = "🟢 активна"
	}

	signature := status.LastSignature
	if signature == "" {
		signature = "—"
	}

	outcome := status.LastOutcome
	lastRun := view.StatusNoCycles
	if !status.LastRunAt.IsZero() {
		lastRun = status.LastRunAt.Format("02.01.2006 15:04:05")
	} else {
		outcome = view.StatusNoCycles
	}

	text := fmt.Sprintf(view.StatusTemplate, saleText, outcome, signature, lastRun)

	return h.sendHTML(ctx, msg.Chat.ID, text)
}

// OnCheck запускает внеочередной цикл, не дожидаясь тикера.
func (h *Handler) OnCheck(ctx *th.Context, msg telego.Message) error {
	if err := h.send(ctx, msg.Chat.ID, view.CheckStarted); err != nil {
		return err
	}

	if err := h.watcher.Check(ctx); err != nil {
		return h.send(ctx, msg.Chat.ID, fmt.Sprintf(view.CheckFailed, err))
	}

	return h.send(ctx, msg.Chat.ID, view.CheckDone)
}

// Вспомогательные методы

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	return err
}

func (h *Handler) send(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID: telego.ChatID{ID: chatID},
		Text:   text,
	})
	return err
}
