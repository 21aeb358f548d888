package env

import (
	"climate_finance/internal/config"
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type sessionTokenConfig struct {
	Secret   string        `env:"SESSION_TOKEN_SECRET,required,notEmpty"`
	Duration time.Duration `env:"SESSION_TOKEN_TTL" envDefault:"24h"`
}

func NewSessionTokenConfig() (config.SessionTokenConfig, error) {
	var cfg sessionTokenConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse session token config: %w", err)
	}

	if cfg.Duration <= 0 {
		return nil, errors.New("session token ttl must be positive")
	}

	return &cfg, nil
}

func (c *sessionTokenConfig) SecretKey() []byte {
	return []byte(c.Secret)
}

func (c *sessionTokenConfig) TTL() time.Duration {
	return c.Duration
}
