package page

import (
	"bytes"
	dto "climate_finance/internal/api/dto/game"
	"climate_finance/internal/config"
	"climate_finance/internal/converter"
	"climate_finance/internal/middleware"
	"climate_finance/internal/model"
	"climate_finance/internal/service"
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"affordable": func(b *bool) bool { return b != nil && *b },
}

var (
	indexTmpl = template.Must(template.New("index").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/index.html"))
	gameTmpl  = template.Must(template.New("game").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/game.html"))
)

type feature struct {
	Title       string
	Description string
}

var features = []feature{
	{"Aprenda Jogando", "Entenda como funciona o financiamento climático através de decisões práticas e interativas."},
	{"Impacto Real", "Veja como cada investimento afeta a sustentabilidade e o apoio da comunidade em tempo real."},
	{"Foco Regional", "Projetos adaptados para as necessidades específicas do Sudeste brasileiro."},
	{"Recursos Educativos", "Acesso a informações e guias sobre financiamento climático e sustentabilidade."},
}

type indexView struct {
	Features []feature
}

type gameView struct {
	Session dto.SessionResponse
	Notices []dto.NoticeResponse
}

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

// Index Стартовая страница
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	render(w, r, indexTmpl, indexView{Features: features})
}

// Game Экран игры с текущим состоянием
func (h *Handler) Game(w http.ResponseWriter, r *http.Request) {
	g, ok := middleware.GameFromContext(r.Context())
	if !ok {
		http.Error(w, "game session not found", http.StatusInternalServerError)
		return
	}

	h.renderGame(w, r, g, nil)
}

// Invest Обработка формы выбора варианта
func (h *Handler) Invest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	g, ok := middleware.GameFromContext(r.Context())
	if !ok {
		http.Error(w, "game session not found", http.StatusInternalServerError)
		return
	}

	res := h.serv.ApplyDecision(r.Context(), g.Session, r.PostForm.Get("option_id"))
	notices := converter.ToDecisionNotices(res, g.Session)
	g.Session = res.Session

	h.renderGame(w, r, g, notices)
}

// Reset Новая игра
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	g := middleware.NewGame(r.Context(), h.serv)
	h.renderGame(w, r, g, converter.ToResetNotices())
}

func (h *Handler) renderGame(w http.ResponseWriter, r *http.Request, g model.Game, notices []dto.NoticeResponse) {
	if err := middleware.SaveGame(w, h.tokenCfg, g); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to save game")
		http.Error(w, "failed to save game", http.StatusInternalServerError)
		return
	}

	render(w, r, gameTmpl, gameView{
		Session: converter.ToSessionResponse(g, h.serv.AvailableOptions(g.Session), h.serv.Milestones()),
		Notices: notices,
	})
}

// render Сначала рендерим в буфер, чтобы при ошибке не отдать половину страницы
func render(w http.ResponseWriter, r *http.Request, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to render page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
