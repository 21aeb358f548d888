package env

import (
	"climate_finance/internal/config"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type httpConfig struct {
	Addr string `env:"HTTP_ADDRESS" envDefault:":8080"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse http config: %w", err)
	}

	return &cfg, nil
}

func (c *httpConfig) Address() string {
	return c.Addr
}
