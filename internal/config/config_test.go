package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"salewatch/internal/config"
)

func TestLoad(t *testing.T) {
	rq := require.New(t)

	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "1217838677")
	t.Setenv("WATCH_TOP_N", "7")
	t.Setenv("WATCH_NOTIFY_SALE_END", "true")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("123:abc", cfg.Bot.Token)
	rq.Equal(int64(1217838677), cfg.Bot.ChatID)
	rq.Equal(7, cfg.Watch.TopN)
	rq.True(cfg.Watch.NotifySaleEnd)

	// Дефолты
	rq.Equal("https://mnstry.com", cfg.Store.BaseURL)
	rq.Equal("/products.json", cfg.Store.FeedPath)
	rq.Equal(250, cfg.Store.FeedPageLimit)
	rq.Equal(3, cfg.Watch.MaxAttempts)
	rq.Equal("file", cfg.Watch.StateBackend)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	rq := require.New(t)

	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "1217838677")
	t.Setenv("WATCH_STATE_BACKEND", "postgres")

	_, err := config.Load()
	rq.Error(err)
}

func TestLoadRequiresCredentials(t *testing.T) {
	rq := require.New(t)

	// Без токена запуск должен падать громко, а не молча пропускать доставку.
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	_, err := config.Load()
	rq.Error(err)
}
