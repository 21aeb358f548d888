package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type SessionTokenConfig interface {
	SecretKey() []byte
	TTL() time.Duration
}

type LogConfig interface {
	Level() string
	// JSON true - писать логи в JSON, иначе человекочитаемый вывод в консоль
	JSON() bool
}
