package config

import "time"

type Watch struct {
	TopN          int           `env:"WATCH_TOP_N" envDefault:"5" validate:"gt=0"`
	NotifySaleEnd bool          `env:"WATCH_NOTIFY_SALE_END" envDefault:"false"`
	MaxAttempts   int           `env:"WATCH_MAX_ATTEMPTS" envDefault:"3" validate:"gte=1"`
	RetryBackoff  time.Duration `env:"WATCH_RETRY_BACKOFF" envDefault:"3s"`
	Interval      time.Duration `env:"WATCH_INTERVAL" envDefault:"15m"`
	StateBackend  string        `env:"WATCH_STATE_BACKEND" envDefault:"file" validate:"oneof=file redis"`
	StateFile     string        `env:"WATCH_STATE_FILE" envDefault:"state.json"`
	StateKey      string        `env:"WATCH_STATE_KEY" envDefault:"salewatch:state"`
	FallbackTitle string        `env:"WATCH_FALLBACK_TITLE" envDefault:"MNSTRY Product"`
}
