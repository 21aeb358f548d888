package game

import (
	dto "climate_finance/internal/api/dto/game"
	"climate_finance/internal/config"
	"climate_finance/internal/converter"
	"climate_finance/internal/middleware"
	"climate_finance/internal/model"
	"climate_finance/internal/service"
	"climate_finance/pkg/req"
	"climate_finance/pkg/resp"
	"net/http"

	"github.com/rs/zerolog"
)

type HandlerDeps struct {
	Serv     service.GameService
	TokenCfg config.SessionTokenConfig
}

type Handler struct {
	serv     service.GameService
	tokenCfg config.SessionTokenConfig
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, tokenCfg: deps.TokenCfg}
}

// Catalog Полный каталог в порядке объявления
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCatalogResponse(h.serv.Catalog()))
}

// State Текущая сессия. Новая игра сразу сохраняется в cookie.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	g, ok := middleware.GameFromContext(r.Context())
	if !ok {
		resp.WriteJSONError(w, http.StatusInternalServerError, "game session not found")
		return
	}

	if err := middleware.SaveGame(w, h.tokenCfg, g); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to save game")
		resp.WriteJSONError(w, http.StatusInternalServerError, "failed to save game")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.GameResponse{
		Session: h.sessionResponse(g),
	})
}

// Decide Применяет выбор варианта
func (h *Handler) Decide(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DecisionRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	g, ok := middleware.GameFromContext(r.Context())
	if !ok {
		resp.WriteJSONError(w, http.StatusInternalServerError, "game session not found")
		return
	}

	res := h.serv.ApplyDecision(r.Context(), g.Session, payload.OptionID)
	notices := converter.ToDecisionNotices(res, g.Session)
	g.Session = res.Session

	if err := middleware.SaveGame(w, h.tokenCfg, g); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to save game")
		resp.WriteJSONError(w, http.StatusInternalServerError, "failed to save game")
		return
	}

	resp.WriteJSONResponse(w, decisionStatus(res), dto.DecisionResponse{
		Accepted: res.Accepted,
		Reason:   string(res.Reason),
		Session:  h.sessionResponse(g),
		Notices:  notices,
	})
}

// Reset Начинает новую игру с новым идентификатором
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	g := middleware.NewGame(r.Context(), h.serv)

	if err := middleware.SaveGame(w, h.tokenCfg, g); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to save game")
		resp.WriteJSONError(w, http.StatusInternalServerError, "failed to save game")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.GameResponse{
		Session: h.sessionResponse(g),
		Notices: converter.ToResetNotices(),
	})
}

func (h *Handler) sessionResponse(g model.Game) dto.SessionResponse {
	return converter.ToSessionResponse(g, h.serv.AvailableOptions(g.Session), h.serv.Milestones())
}

func decisionStatus(res model.DecisionResult) int {
	switch res.Reason {
	case model.RejectNone:
		return http.StatusOK
	case model.RejectInsufficientBudget, model.RejectGameOver:
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}
