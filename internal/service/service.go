package service

import (
	"climate_finance/internal/model"
	"context"
)

type GameService interface {
	Catalog() []model.InvestmentOption
	AvailableOptions(session model.Session) []model.InvestmentOption
	Milestones() []model.Milestone
	ApplyDecision(ctx context.Context, session model.Session, optionID string) model.DecisionResult
	Reset(ctx context.Context) model.Session
	Restore(ctx context.Context, snap model.Snapshot) (model.Session, error)
}
