package cli

import (
	"bytes"
	"climate_finance/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_Terminal(t *testing.T) {
	serv, err := newGameService()
	require.NoError(t, err)

	var out bytes.Buffer
	session, err := simulate(context.Background(), &out, serv, []string{"housing", "solar", "solar", "recycle"})
	require.NoError(t, err)

	assert.Equal(t, model.PhaseTerminal, session.Phase)
	assert.Equal(t, 3000, session.Budget)
	assert.Contains(t, out.String(), "solar: rejected (already_chosen)")
	assert.Contains(t, out.String(), "120 pontos")
}

func TestSimulate_InProgress(t *testing.T) {
	serv, err := newGameService()
	require.NoError(t, err)

	var out bytes.Buffer
	session, err := simulate(context.Background(), &out, serv, []string{"forest"})
	require.NoError(t, err)

	assert.Equal(t, model.PhaseActive, session.Phase)
	assert.Contains(t, out.String(), "R$ 42.000")
}

func TestCatalogCmd(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"catalog"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "education")
	assert.Contains(t, out.String(), "R$ 20.000")
}

func TestSimulateCmd_RequiresPick(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"simulate"})

	assert.Error(t, cmd.Execute())
}
