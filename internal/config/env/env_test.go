package env

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPConfig_Default(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", "")
	os.Unsetenv("HTTP_ADDRESS")

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Address())
}

func TestNewHTTPConfig_FromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", "127.0.0.1:9000")

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Address())
}

func TestNewSessionTokenConfig(t *testing.T) {
	t.Setenv("SESSION_TOKEN_SECRET", "s3cret")
	t.Setenv("SESSION_TOKEN_TTL", "2h")

	cfg, err := NewSessionTokenConfig()
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), cfg.SecretKey())
	assert.Equal(t, 2*time.Hour, cfg.TTL())
}

func TestNewSessionTokenConfig_MissingSecret(t *testing.T) {
	t.Setenv("SESSION_TOKEN_SECRET", "")

	_, err := NewSessionTokenConfig()
	assert.Error(t, err)
}

func TestNewSessionTokenConfig_BadTTL(t *testing.T) {
	t.Setenv("SESSION_TOKEN_SECRET", "s3cret")

	t.Setenv("SESSION_TOKEN_TTL", "soon")
	_, err := NewSessionTokenConfig()
	assert.Error(t, err)

	t.Setenv("SESSION_TOKEN_TTL", "-1h")
	_, err = NewSessionTokenConfig()
	assert.Error(t, err)
}

func TestNewLogConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := NewLogConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level())
	assert.True(t, cfg.JSON())

	t.Setenv("LOG_FORMAT", "xml")
	_, err = NewLogConfig()
	assert.Error(t, err)
}
