package config

type Bot struct {
	Token  string `env:"TELEGRAM_BOT_TOKEN,notEmpty" json:"-"`
	ChatID int64  `env:"TELEGRAM_CHAT_ID,notEmpty"`
	// Кому разрешены команды бота в daemon-режиме
	AdminID int64 `env:"TELEGRAM_ADMIN_ID"`
}
