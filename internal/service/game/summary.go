package game

import "climate_finance/internal/model"

const (
	excellentThreshold = 150
	goodThreshold      = 100
	moderateThreshold  = 50
)

var tierMessages = map[model.SummaryTier]string{
	model.TierExcellent: "🌟 Excelente! Sua comunidade é modelo de sustentabilidade!",
	model.TierGood:      "✅ Bom trabalho! A comunidade está no caminho certo.",
	model.TierModerate:  "📊 Progresso moderado. Continue investindo em sustentabilidade.",
	model.TierLow:       "💡 Ainda há muito a fazer. Revise suas estratégias de investimento.",
}

// Summarize Итог игры по сумме показателей
func Summarize(sustainability, communitySupport int) model.Summary {
	total := sustainability + communitySupport

	var tier model.SummaryTier
	switch {
	case total >= excellentThreshold:
		tier = model.TierExcellent
	case total >= goodThreshold:
		tier = model.TierGood
	case total >= moderateThreshold:
		tier = model.TierModerate
	default:
		tier = model.TierLow
	}

	return model.Summary{
		TotalScore: total,
		Tier:       tier,
		Message:    tierMessages[tier],
	}
}
