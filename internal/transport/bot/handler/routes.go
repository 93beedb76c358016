package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"salewatch/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	// Все команды закрыты админской миддлварью: бот пишет в общий чат,
	// но слушается только владельца.
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnStatus, th.CommandEqual("status"))
	adminGroup.HandleMessage(h.OnCheck, th.CommandEqual("check"))
}
