package catalog_repo

import (
	"bytes"
	"climate_finance/internal/model"
	"climate_finance/internal/repository"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog Каталог не прошёл валидацию при загрузке
var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed catalog.yaml
var embeddedCatalog []byte

type catalogFile struct {
	Options    []optionRow    `yaml:"options"`
	Milestones []milestoneRow `yaml:"milestones"`
}

type optionRow struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Cost        int    `yaml:"cost"`
	Effects     struct {
		Sustainability   int `yaml:"sustainability"`
		CommunitySupport int `yaml:"community_support"`
	} `yaml:"effects"`
}

type milestoneRow struct {
	Round       int    `yaml:"round"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Реализация репозитория каталога. Данные читаются один раз и дальше не меняются,
// поэтому мьютекс не нужен.
type repo struct {
	options    []model.InvestmentOption
	index      map[string]int
	milestones []model.Milestone
}

// NewCatalogRepository Каталог, вшитый в бинарник
func NewCatalogRepository() (repository.CatalogRepository, error) {
	return Parse(embeddedCatalog)
}

// Parse Разбирает и валидирует YAML каталога
func Parse(data []byte) (repository.CatalogRepository, error) {
	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if len(file.Options) == 0 {
		return nil, fmt.Errorf("%w: no options", ErrInvalidCatalog)
	}

	r := &repo{
		options:    make([]model.InvestmentOption, 0, len(file.Options)),
		index:      make(map[string]int, len(file.Options)),
		milestones: make([]model.Milestone, 0, len(file.Milestones)),
	}

	for _, row := range file.Options {
		if row.ID == "" {
			return nil, fmt.Errorf("%w: option without id", ErrInvalidCatalog)
		}
		if _, ok := r.index[row.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate option id %q", ErrInvalidCatalog, row.ID)
		}
		if row.Cost <= 0 {
			return nil, fmt.Errorf("%w: option %q must have positive cost", ErrInvalidCatalog, row.ID)
		}
		if row.Effects.Sustainability < 0 || row.Effects.CommunitySupport < 0 {
			return nil, fmt.Errorf("%w: option %q has negative effect", ErrInvalidCatalog, row.ID)
		}

		r.index[row.ID] = len(r.options)
		r.options = append(r.options, model.InvestmentOption{
			ID:                   row.ID,
			Title:                row.Title,
			Description:          row.Description,
			Category:             row.Category,
			Cost:                 row.Cost,
			SustainabilityEffect: row.Effects.Sustainability,
			CommunityEffect:      row.Effects.CommunitySupport,
		})
	}

	for _, row := range file.Milestones {
		r.milestones = append(r.milestones, model.Milestone{
			Round:       row.Round,
			Title:       row.Title,
			Description: row.Description,
		})
	}

	return r, nil
}

// Options Копия списка вариантов в порядке объявления
func (r *repo) Options() []model.InvestmentOption {
	out := make([]model.InvestmentOption, len(r.options))
	copy(out, r.options)
	return out
}

// Option Поиск варианта по id
func (r *repo) Option(id string) (model.InvestmentOption, bool) {
	i, ok := r.index[id]
	if !ok {
		return model.InvestmentOption{}, false
	}
	return r.options[i], true
}

func (r *repo) Milestones() []model.Milestone {
	out := make([]model.Milestone, len(r.milestones))
	copy(out, r.milestones)
	return out
}
