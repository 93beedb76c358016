package config

import "time"

type Store struct {
	BaseURL        string        `env:"STORE_BASE_URL" envDefault:"https://mnstry.com" validate:"url"`
	FeedPath       string        `env:"STORE_FEED_PATH" envDefault:"/products.json"`
	FeedPageLimit  int           `env:"STORE_FEED_PAGE_LIMIT" envDefault:"250" validate:"gt=0"`
	RequestTimeout time.Duration `env:"STORE_REQUEST_TIMEOUT" envDefault:"25s"`
	// Витрина отдаёт анти-бот заглушку на «голый» UA
	UserAgent      string `env:"STORE_USER_AGENT" envDefault:"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120 Safari/537.36"`
	LogFieldMaxLen int    `env:"STORE_LOG_FIELD_MAX_LEN" envDefault:"2048"`
}
