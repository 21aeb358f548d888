package app

import (
	"climate_finance/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Run Поднимает HTTP сервер и ждёт SIGINT/SIGTERM
func (s *App) Run(envPath string) error {
	err := config.Load(envPath)
	if err != nil {
		log.Warn().Err(err).Str("path", envPath).Msg("error loading .env file")
	}
	s.initServiceProvider()

	if err := initLogger(s.ServiceProvider.LogCfg()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func initLogger(cfg config.LogConfig) error {
	level, err := zerolog.ParseLevel(cfg.Level())
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	if !cfg.JSON() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	zerolog.DefaultContextLogger = &log.Logger

	return nil
}
