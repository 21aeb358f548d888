package game

import (
	"bytes"
	dto "climate_finance/internal/api/dto/game"
	"climate_finance/internal/middleware"
	"climate_finance/internal/repository/catalog_repo"
	gameServ "climate_finance/internal/service/game"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenCfg struct{}

func (tokenCfg) SecretKey() []byte  { return []byte("test-secret") }
func (tokenCfg) TTL() time.Duration { return time.Hour }

type client struct {
	t      *testing.T
	srv    *httptest.Server
	hc     *http.Client
	jarURL *url.URL
}

func newClient(t *testing.T) *client {
	t.Helper()

	catalog, err := catalog_repo.NewCatalogRepository()
	require.NoError(t, err)
	serv := gameServ.NewGameService(catalog)
	h := NewHandler(HandlerDeps{Serv: serv, TokenCfg: tokenCfg{}})

	r := chi.NewRouter()
	r.Get("/api/catalog", h.Catalog)
	r.Post("/api/game/reset", h.Reset)
	r.Group(func(rr chi.Router) {
		rr.Use(middleware.GameSession(middleware.SessionDeps{Serv: serv, TokenCfg: tokenCfg{}}))
		rr.Get("/api/game", h.State)
		rr.Post("/api/game/decisions", h.Decide)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	return &client{t: t, srv: srv, hc: &http.Client{Jar: jar}, jarURL: u}
}

func (c *client) do(method, path string, body any, out any) int {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(c.t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req, err := http.NewRequest(method, c.srv.URL+path, &buf)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	require.NoError(c.t, err)
	defer res.Body.Close()

	if out != nil {
		require.NoError(c.t, json.NewDecoder(res.Body).Decode(out))
	}
	return res.StatusCode
}

func (c *client) decide(optionID string) (int, dto.DecisionResponse) {
	c.t.Helper()
	var out dto.DecisionResponse
	status := c.do(http.MethodPost, "/api/game/decisions", dto.DecisionRequest{OptionID: optionID}, &out)
	return status, out
}

func TestCatalog(t *testing.T) {
	c := newClient(t)

	var out dto.CatalogResponse
	status := c.do(http.MethodGet, "/api/catalog", nil, &out)

	assert.Equal(t, http.StatusOK, status)
	require.Len(t, out.Options, 6)
	assert.Equal(t, "solar", out.Options[0].ID)
	assert.Equal(t, "R$ 15.000", out.Options[0].CostLabel)
}

func TestState_NewGame(t *testing.T) {
	c := newClient(t)

	var out dto.GameResponse
	status := c.do(http.MethodGet, "/api/game", nil, &out)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "active", out.Session.Status)
	assert.Equal(t, 50000, out.Session.Budget)
	assert.Equal(t, 1, out.Session.Round)
	assert.Len(t, out.Session.Available, 6)
	assert.NotEmpty(t, out.Session.GameID)
	assert.NotEmpty(t, c.hc.Jar.Cookies(c.jarURL))
}

func TestDecide_SessionCarriedBetweenRequests(t *testing.T) {
	c := newClient(t)

	var initial dto.GameResponse
	c.do(http.MethodGet, "/api/game", nil, &initial)

	status, out := c.decide("housing")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, out.Accepted)
	assert.Equal(t, initial.Session.GameID, out.Session.GameID)

	status, out = c.decide("solar")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 15000, out.Session.Budget)
	assert.Equal(t, 42, out.Session.Sustainability)
	assert.Equal(t, 40, out.Session.CommunitySupport)
	assert.Equal(t, 3, out.Session.Round)
	assert.Equal(t, "active", out.Session.Status)
	assert.Equal(t, []string{"housing", "solar"}, out.Session.Chosen)
	require.Len(t, out.Notices, 1)
	assert.Equal(t, "Painéis Solares Comunitários implementado!", out.Notices[0].Title)

	var state dto.GameResponse
	c.do(http.MethodGet, "/api/game", nil, &state)
	assert.Equal(t, 15000, state.Session.Budget)
	assert.Len(t, state.Session.Available, 4)
}

func TestDecide_Rejections(t *testing.T) {
	c := newClient(t)

	c.decide("housing")
	c.decide("solar")
	c.decide("water")

	status, out := c.decide("recycle")
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, out.Accepted)
	assert.Equal(t, "insufficient_budget", out.Reason)
	assert.Equal(t, 5000, out.Session.Budget)
	require.Len(t, out.Notices, 1)
	assert.Equal(t, "Você precisa de R$ 12.000, mas tem apenas R$ 5.000.", out.Notices[0].Description)

	status, out = c.decide("water")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "already_chosen", out.Reason)

	status, out = c.decide("nuclear")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "unknown_option", out.Reason)
	assert.Equal(t, 4, out.Session.Round)
}

func TestDecide_TerminalAndReset(t *testing.T) {
	c := newClient(t)

	c.decide("housing")
	c.decide("solar")
	status, out := c.decide("recycle")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "terminal", out.Session.Status)
	require.NotNil(t, out.Session.Summary)
	assert.Equal(t, "good", out.Session.Summary.Tier)
	assert.Empty(t, out.Session.Available)
	require.Len(t, out.Notices, 2)
	assert.Equal(t, "Jogo Concluído!", out.Notices[1].Title)

	status, out = c.decide("education")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "game_over", out.Reason)

	var reset dto.GameResponse
	status = c.do(http.MethodPost, "/api/game/reset", nil, &reset)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "active", reset.Session.Status)
	assert.Equal(t, 50000, reset.Session.Budget)
	assert.Empty(t, reset.Session.Chosen)
	assert.NotEqual(t, out.Session.GameID, reset.Session.GameID)
	require.Len(t, reset.Notices, 1)
	assert.Equal(t, "Novo jogo iniciado!", reset.Notices[0].Title)

	status, out = c.decide("education")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, reset.Session.GameID, out.Session.GameID)
}

func TestDecide_BadBody(t *testing.T) {
	c := newClient(t)

	status := c.do(http.MethodPost, "/api/game/decisions", "{not json", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status = c.do(http.MethodPost, "/api/game/decisions", `{"option_id":"solar","budget":1}`, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestState_TamperedCookieStartsNewGame(t *testing.T) {
	c := newClient(t)

	c.decide("housing")
	c.hc.Jar.SetCookies(c.jarURL, []*http.Cookie{{Name: "game_session", Value: "garbage", Path: "/"}})

	var out dto.GameResponse
	status := c.do(http.MethodGet, "/api/game", nil, &out)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 50000, out.Session.Budget)
	assert.Empty(t, out.Session.Chosen)
}
