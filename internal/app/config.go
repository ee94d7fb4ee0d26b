package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// PGDSN is optional: without it the audit trail stays in memory.
	PGDSN string `envconfig:"PG_DSN" default:""`

	RedisAddr string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`

	// SaveQueue routes saves through the asynq worker instead of the
	// in-process delay sink.
	SaveQueue bool          `envconfig:"SAVE_QUEUE" default:"false"`
	SaveDelay time.Duration `envconfig:"SAVE_DELAY" default:"1500ms"`
	SaveWait  time.Duration `envconfig:"SAVE_WAIT" default:"2s"`

	SessionTTL   time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	SessionSweep time.Duration `envconfig:"SESSION_SWEEP" default:"5m"`

	RateLimit int `envconfig:"RATE_LIMIT" default:"120"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.SaveQueue && cfg.RedisAddr == "" {
		return nil, errors.New("queued saves require a redis address")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
