package catalog_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogRepository_Embedded(t *testing.T) {
	r, err := NewCatalogRepository()
	require.NoError(t, err)

	options := r.Options()
	require.Len(t, options, 6)

	cheapest := options[0]
	for _, o := range options {
		assert.Positive(t, o.Cost, o.ID)
		assert.NotEmpty(t, o.Title, o.ID)
		assert.NotEmpty(t, o.Category, o.ID)
		if o.Cost < cheapest.Cost {
			cheapest = o
		}
	}
	assert.Equal(t, "education", cheapest.ID)
	assert.Equal(t, 5000, cheapest.Cost)
	assert.Equal(t, 10, cheapest.SustainabilityEffect)
	assert.Equal(t, 30, cheapest.CommunityEffect)

	housing, ok := r.Option("housing")
	require.True(t, ok)
	assert.Equal(t, 20000, housing.Cost)
	assert.Equal(t, 22, housing.SustainabilityEffect)
	assert.Equal(t, 25, housing.CommunityEffect)

	_, ok = r.Option("nuclear")
	assert.False(t, ok)

	milestones := r.Milestones()
	require.Len(t, milestones, 5)
	assert.Equal(t, 1, milestones[0].Round)
	assert.Equal(t, "Guardião do Futuro", milestones[4].Title)
}

func TestOptions_ReturnsCopy(t *testing.T) {
	r, err := NewCatalogRepository()
	require.NoError(t, err)

	options := r.Options()
	options[0].Cost = 1

	again := r.Options()
	assert.Equal(t, 15000, again[0].Cost)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty": `options: []`,
		"duplicate": `
options:
  - {id: a, cost: 1}
  - {id: a, cost: 2}`,
		"zero cost": `
options:
  - {id: a, cost: 0}`,
		"negative effect": `
options:
  - {id: a, cost: 10, effects: {sustainability: -1}}`,
		"missing id": `
options:
  - {cost: 10}`,
	}

	for name, data := range cases {
		_, err := Parse([]byte(data))
		assert.ErrorIs(t, err, ErrInvalidCatalog, name)
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte(`
options:
  - {id: a, cost: 10, price: 3}`))
	assert.Error(t, err)
}
