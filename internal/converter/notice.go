package converter

import (
	dto "climate_finance/internal/api/dto/game"
	"climate_finance/internal/model"
	"climate_finance/pkg/money"
	"fmt"
)

const (
	noticeSuccess = "success"
	noticeError   = "error"
	noticeInfo    = "info"
)

// ToDecisionNotices Уведомления для пользователя по результату решения.
// before - сессия до попытки, нужна для текста об остатке бюджета.
func ToDecisionNotices(res model.DecisionResult, before model.Session) []dto.NoticeResponse {
	if !res.Accepted {
		return []dto.NoticeResponse{rejectNotice(res, before)}
	}

	notices := []dto.NoticeResponse{{
		Kind:  noticeSuccess,
		Title: fmt.Sprintf("%s implementado!", res.Option.Title),
		Description: fmt.Sprintf("Sustentabilidade +%d%% | Apoio Comunitário +%d%%",
			res.Option.SustainabilityEffect, res.Option.CommunityEffect),
	}}

	if res.Finished && res.Session.Summary != nil {
		notices = append(notices, dto.NoticeResponse{
			Kind:        noticeSuccess,
			Title:       "Jogo Concluído!",
			Description: res.Session.Summary.Message,
		})
	}

	return notices
}

func rejectNotice(res model.DecisionResult, before model.Session) dto.NoticeResponse {
	switch res.Reason {
	case model.RejectInsufficientBudget:
		return dto.NoticeResponse{
			Kind:  noticeError,
			Title: "Orçamento insuficiente!",
			Description: fmt.Sprintf("Você precisa de %s, mas tem apenas %s.",
				money.Format(res.Option.Cost), money.Format(before.Budget)),
		}
	case model.RejectAlreadyChosen:
		return dto.NoticeResponse{
			Kind:        noticeError,
			Title:       "Investimento já realizado",
			Description: fmt.Sprintf("%s já foi escolhido nesta partida.", res.Option.Title),
		}
	case model.RejectGameOver:
		return dto.NoticeResponse{
			Kind:        noticeError,
			Title:       "Jogo Concluído!",
			Description: "Inicie um novo jogo para continuar investindo.",
		}
	default:
		return dto.NoticeResponse{
			Kind:  noticeError,
			Title: "Investimento desconhecido",
		}
	}
}

func ToResetNotices() []dto.NoticeResponse {
	return []dto.NoticeResponse{{Kind: noticeInfo, Title: "Novo jogo iniciado!"}}
}
