package converter

import (
	dto "climate_finance/internal/api/dto/game"
	"climate_finance/internal/model"
	"climate_finance/pkg/money"
)

const (
	milestoneCompleted = "completed"
	milestoneCurrent   = "current"
	milestonePending   = "pending"
)

func ToOptionResponse(o model.InvestmentOption) dto.OptionResponse {
	return dto.OptionResponse{
		ID:                   o.ID,
		Title:                o.Title,
		Description:          o.Description,
		Category:             o.Category,
		Cost:                 o.Cost,
		CostLabel:            money.Format(o.Cost),
		SustainabilityEffect: o.SustainabilityEffect,
		CommunityEffect:      o.CommunityEffect,
	}
}

func ToCatalogResponse(options []model.InvestmentOption) dto.CatalogResponse {
	result := make([]dto.OptionResponse, len(options))
	for i, o := range options {
		result[i] = ToOptionResponse(o)
	}
	return dto.CatalogResponse{Options: result}
}

// ToSessionResponse Собирает представление сессии.
// available - варианты, ещё не выбранные в этой сессии.
func ToSessionResponse(g model.Game, available []model.InvestmentOption, milestones []model.Milestone) dto.SessionResponse {
	s := g.Session

	result := dto.SessionResponse{
		GameID:           g.ID,
		Status:           string(s.Phase),
		Budget:           s.Budget,
		BudgetLabel:      money.Format(s.Budget),
		Sustainability:   s.Sustainability,
		CommunitySupport: s.CommunitySupport,
		Round:            s.Round,
		MaxRounds:        model.MaxRounds,
		Chosen:           s.Chosen.IDs(),
		Available:        []dto.OptionResponse{},
		Trail:            toTrail(s.Round, milestones),
	}

	// В конечной фазе варианты не предлагаются
	if !s.IsTerminal() {
		for _, o := range available {
			opt := ToOptionResponse(o)
			affordable := s.Budget >= o.Cost
			opt.Affordable = &affordable
			result.Available = append(result.Available, opt)
		}
	}

	if s.Summary != nil {
		result.Summary = &dto.SummaryResponse{
			TotalScore: s.Summary.TotalScore,
			Tier:       string(s.Summary.Tier),
			Message:    s.Summary.Message,
		}
	}

	return result
}

func toTrail(round int, milestones []model.Milestone) []dto.MilestoneResponse {
	result := make([]dto.MilestoneResponse, len(milestones))
	for i, m := range milestones {
		status := milestonePending
		switch {
		case round > m.Round:
			status = milestoneCompleted
		case round == m.Round:
			status = milestoneCurrent
		}
		result[i] = dto.MilestoneResponse{
			Round:       m.Round,
			Title:       m.Title,
			Description: m.Description,
			Status:      status,
		}
	}
	return result
}
