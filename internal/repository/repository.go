package repository

import (
	"climate_finance/internal/model"
)

// CatalogRepository Неизменяемый каталог вариантов инвестиций
type CatalogRepository interface {
	Options() []model.InvestmentOption
	Option(id string) (model.InvestmentOption, bool)
	Milestones() []model.Milestone
}
