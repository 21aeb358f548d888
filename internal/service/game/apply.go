package game

import (
	"climate_finance/internal/model"
	"context"

	"github.com/rs/zerolog"
)

// ApplyDecision Применяет выбор варианта к сессии.
// Исходная сессия никогда не меняется. При отказе возвращается она же.
func (s *serv) ApplyDecision(ctx context.Context, session model.Session, optionID string) model.DecisionResult {
	logger := zerolog.Ctx(ctx)

	res := s.decide(session, optionID)
	decisionsTotal.WithLabelValues(outcomeLabel(res)).Inc()

	if !res.Accepted {
		logger.Info().
			Str("option_id", optionID).
			Str("reason", string(res.Reason)).
			Int("budget", session.Budget).
			Msg("decision rejected")
		return res
	}

	logger.Info().
		Str("option_id", optionID).
		Int("round", res.Session.Round).
		Int("budget", res.Session.Budget).
		Int("sustainability", res.Session.Sustainability).
		Int("community_support", res.Session.CommunitySupport).
		Msg("decision accepted")

	if res.Finished {
		gamesFinishedTotal.WithLabelValues(string(res.Session.Summary.Tier)).Inc()
		logger.Info().
			Int("total_score", res.Session.Summary.TotalScore).
			Str("tier", string(res.Session.Summary.Tier)).
			Msg("game finished")
	}

	return res
}

// decide Чистый переход без логов и метрик. Используется и при восстановлении снимка.
func (s *serv) decide(session model.Session, optionID string) model.DecisionResult {
	reject := func(reason model.RejectReason, opt model.InvestmentOption) model.DecisionResult {
		return model.DecisionResult{Session: session, Reason: reason, Option: opt}
	}

	// В конечной фазе решения не принимаются до сброса
	if session.IsTerminal() {
		opt, _ := s.catalog.Option(optionID)
		return reject(model.RejectGameOver, opt)
	}

	opt, ok := s.catalog.Option(optionID)
	if !ok {
		return reject(model.RejectUnknownOption, model.InvestmentOption{})
	}
	if session.Chosen.Has(optionID) {
		return reject(model.RejectAlreadyChosen, opt)
	}
	// Стоимость, равная остатку, допустима
	if session.Budget < opt.Cost {
		return reject(model.RejectInsufficientBudget, opt)
	}

	next := model.Session{
		Budget:           session.Budget - opt.Cost,
		Sustainability:   min(model.MaxScore, session.Sustainability+opt.SustainabilityEffect),
		CommunitySupport: min(model.MaxScore, session.CommunitySupport+opt.CommunityEffect),
		Round:            session.Round + 1,
		Chosen:           session.Chosen.With(optionID),
		Phase:            model.PhaseActive,
	}

	finished := false
	if next.Round > model.MaxRounds || next.Budget < model.MinBudget {
		summary := Summarize(next.Sustainability, next.CommunitySupport)
		next.Phase = model.PhaseTerminal
		next.Summary = &summary
		finished = true
	}

	return model.DecisionResult{
		Session:  next,
		Accepted: true,
		Option:   opt,
		Finished: finished,
	}
}

func outcomeLabel(res model.DecisionResult) string {
	if res.Accepted {
		return "accepted"
	}
	return string(res.Reason)
}
