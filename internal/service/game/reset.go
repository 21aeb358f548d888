package game

import (
	"climate_finance/internal/model"
	"context"

	"github.com/rs/zerolog"
)

// Reset Новая сессия со значениями по умолчанию
func (s *serv) Reset(ctx context.Context) model.Session {
	resetsTotal.Inc()
	zerolog.Ctx(ctx).Info().Msg("new game started")
	return NewSession()
}

// NewSession Сессия в начальном состоянии
func NewSession() model.Session {
	return model.Session{
		Budget: model.InitialBudget,
		Round:  1,
		Phase:  model.PhaseActive,
	}
}
