package middleware

import (
	"climate_finance/internal/config"
	"climate_finance/internal/model"
	"climate_finance/internal/service"
	"climate_finance/internal/service/game"
	"climate_finance/pkg/token"
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const sessionCookieName = "game_session"

type gameCtxKey struct{}

type SessionDeps struct {
	Serv     service.GameService
	TokenCfg config.SessionTokenConfig
}

// GameSession Достаёт игру из cookie и кладёт её в контекст запроса.
// Если cookie нет, токен просрочен или снимок не сходится, начинается новая игра.
func GameSession(deps SessionDeps) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			g := loadGame(ctx, r, deps)

			logger := zerolog.Ctx(ctx).With().Str("game_id", g.ID).Logger()
			ctx = logger.WithContext(ctx)
			ctx = WithGame(ctx, g)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func loadGame(ctx context.Context, r *http.Request, deps SessionDeps) model.Game {
	logger := zerolog.Ctx(ctx)

	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		return NewGame(ctx, deps.Serv)
	}

	gameID, snap, err := token.VerifySessionToken(c.Value, deps.TokenCfg.SecretKey())
	if err != nil {
		logger.Warn().Err(err).Msg("discarding session token")
		return NewGame(ctx, deps.Serv)
	}

	session, err := deps.Serv.Restore(ctx, snap)
	if err != nil {
		logger.Warn().Err(err).Str("game_id", gameID).Msg("discarding tampered session")
		return NewGame(ctx, deps.Serv)
	}

	return model.Game{ID: gameID, Session: session}
}

// NewGame Новая игра с новым идентификатором
func NewGame(ctx context.Context, serv service.GameService) model.Game {
	return model.Game{
		ID:      uuid.NewString(),
		Session: serv.Reset(ctx),
	}
}

func WithGame(ctx context.Context, g model.Game) context.Context {
	return context.WithValue(ctx, gameCtxKey{}, g)
}

func GameFromContext(ctx context.Context) (model.Game, bool) {
	g, ok := ctx.Value(gameCtxKey{}).(model.Game)
	return g, ok
}

// SaveGame Подписывает снимок и отдаёт его клиенту в cookie
func SaveGame(w http.ResponseWriter, cfg config.SessionTokenConfig, g model.Game) error {
	tok, err := token.GenerateSessionToken(g.ID, game.ToSnapshot(g.Session), cfg.SecretKey(), cfg.TTL())
	if err != nil {
		return err
	}

	setSessionCookie(w, tok, cfg)
	return nil
}

// setSessionCookie устанавливает cookie со снимком игры
func setSessionCookie(w http.ResponseWriter, value string, cfg config.SessionTokenConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(cfg.TTL().Seconds()),
	})
}
