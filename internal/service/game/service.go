package game

import (
	"climate_finance/internal/model"
	"climate_finance/internal/repository"
	"climate_finance/internal/service"
)

type serv struct {
	catalog repository.CatalogRepository
}

// NewGameService Машина состояний игры поверх каталога.
// Сервис не хранит сессий, всё состояние приходит и уходит через аргументы.
func NewGameService(catalog repository.CatalogRepository) service.GameService {
	return &serv{catalog: catalog}
}

func (s *serv) Catalog() []model.InvestmentOption {
	return s.catalog.Options()
}

// AvailableOptions Каталог без уже выбранных вариантов, порядок сохраняется
func (s *serv) AvailableOptions(session model.Session) []model.InvestmentOption {
	all := s.catalog.Options()
	out := make([]model.InvestmentOption, 0, len(all))
	for _, o := range all {
		if session.Chosen.Has(o.ID) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (s *serv) Milestones() []model.Milestone {
	return s.catalog.Milestones()
}
