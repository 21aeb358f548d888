package env

import (
	"climate_finance/internal/config"
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

type logConfig struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

func NewLogConfig() (config.LogConfig, error) {
	var cfg logConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse log config: %w", err)
	}

	if cfg.LogFormat != logFormatConsole && cfg.LogFormat != logFormatJSON {
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}

	return &cfg, nil
}

func (c *logConfig) Level() string {
	return c.LogLevel
}

func (c *logConfig) JSON() bool {
	return c.LogFormat == logFormatJSON
}
