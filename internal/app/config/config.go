package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	DB       DB         `mapstructure:",squash"`
	HTTP     HTTP       `mapstructure:",squash"`
	Source   Source     `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Lookup   Lookup     `mapstructure:",squash"`
}

// DB configures the daily record store. An empty DSN disables it.
type DB struct {
	DSN                   string        `mapstructure:"DB_DSN"`
	MaxOpenConnections    int           `mapstructure:"DB_MAX_OPEN_CONNECTIONS"`
	MaxConnectionLifetime time.Duration `mapstructure:"DB_MAX_CONNECTIONS_LIFETIME"`
	MaxConnectionIdleTime time.Duration `mapstructure:"DB_MAX_CONNECTION_IDLE_TIME"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Source holds the document source configuration shared by all countries.
type Source struct {
	HTMLTimeout      time.Duration `mapstructure:"HTML_SOURCE_TIMEOUT"`
	HTMLMaxRetries   int           `mapstructure:"HTML_SOURCE_MAX_RETRIES"`
	HTMLRateLimitRPS int           `mapstructure:"HTML_SOURCE_RATE_LIMIT"`
	PDFTextDir       string        `mapstructure:"PDF_TEXT_DIR"`
}

// Lookup tunes the cache-aside behavior of the lookup flow.
type Lookup struct {
	CacheExpiration time.Duration `mapstructure:"LOOKUP_CACHE_EXPIRATION"`
	LockTimeout     time.Duration `mapstructure:"LOOKUP_LOCK_TIMEOUT"`
}
