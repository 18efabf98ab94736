package shared

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	FeedBase    string
	FeedCountry string
	FeedRPS     int
	MaxPages    int
	CacheTTL    time.Duration
	OpenAIKey   string
	LexiconPath string
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),
		RedisAddr:   env("REDIS_ADDR", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		RedisPass:   env("REDIS_PASSWORD", ""),
		FeedBase:    env("FEED_BASE_URL", "https://itunes.apple.com"),
		FeedCountry: env("FEED_COUNTRY", "us"),
		FeedRPS:     atoi("FEED_RPS", 5),
		MaxPages:    atoi("FEED_MAX_PAGES", 10),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		OpenAIKey:   env("OPENAI_API_KEY", ""),
		LexiconPath: env("SENTIMENT_LEXICON", ""),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
