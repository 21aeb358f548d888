package app

import (
	gameAPI "climate_finance/internal/api/game"
	pageAPI "climate_finance/internal/api/page"
	"climate_finance/internal/config"
	"climate_finance/internal/config/env"
	"climate_finance/internal/middleware"
	"climate_finance/internal/repository"
	"climate_finance/internal/repository/catalog_repo"
	"climate_finance/internal/service"
	"climate_finance/internal/service/game"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServiceProvider struct {
	// Catalog bits
	catalogRepo repository.CatalogRepository

	// Game bits
	tokenCfg config.SessionTokenConfig
	gameServ service.GameService
	gameHand *gameAPI.Handler
	pageHand *pageAPI.Handler

	// Logging
	logCfg config.LogConfig

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) CatalogRepository() repository.CatalogRepository {
	if sp.catalogRepo == nil {
		repo, err := catalog_repo.NewCatalogRepository()
		if err != nil {
			panic("failed to load catalog: " + err.Error())
		}
		sp.catalogRepo = repo
	}
	return sp.catalogRepo
}

func (sp *ServiceProvider) SessionTokenCfg() config.SessionTokenConfig {
	if sp.tokenCfg == nil {
		cfg, err := env.NewSessionTokenConfig()
		if err != nil {
			panic("failed to get session token config: " + err.Error())
		}
		sp.tokenCfg = cfg
	}
	return sp.tokenCfg
}

func (sp *ServiceProvider) GameService() service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(sp.CatalogRepository())
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler() *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv:     sp.GameService(),
			TokenCfg: sp.SessionTokenCfg(),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) PageHandler() *pageAPI.Handler {
	if sp.pageHand == nil {
		sp.pageHand = pageAPI.NewHandler(pageAPI.HandlerDeps{
			Serv:     sp.GameService(),
			TokenCfg: sp.SessionTokenCfg(),
		})
	}
	return sp.pageHand
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(middleware.RequestLogger)
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Handle("/metrics", promhttp.Handler())

		sessionMW := middleware.GameSession(middleware.SessionDeps{
			Serv:     sp.GameService(),
			TokenCfg: sp.SessionTokenCfg(),
		})

		// Pages
		pageHandler := sp.PageHandler()
		r.Get("/", pageHandler.Index)
		r.Post("/game/reset", pageHandler.Reset)
		r.Group(func(rr chi.Router) {
			rr.Use(sessionMW)
			rr.Get("/game", pageHandler.Game)
			rr.Post("/game/invest", pageHandler.Invest)
		})

		// JSON endpoints
		gameHandler := sp.GameHandler()
		r.Route("/api", func(rr chi.Router) {
			rr.Get("/catalog", gameHandler.Catalog)
			rr.Post("/game/reset", gameHandler.Reset)
			rr.Group(func(gr chi.Router) {
				gr.Use(sessionMW)
				gr.Get("/game", gameHandler.State)
				gr.Post("/game/decisions", gameHandler.Decide)
			})
		})

		sp.router = r
	}

	return sp.router
}
