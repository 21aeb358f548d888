package cli

import (
	"climate_finance/internal/app"
	"climate_finance/internal/repository/catalog_repo"
	"climate_finance/internal/service"
	"climate_finance/internal/service/game"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
)

// NewRootCmd Корневая команда climate-finance
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "climate-finance",
		Short:         "Jogo educativo sobre financiamento climático",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newCatalogCmd(),
		newSimulateCmd(),
	)

	return root
}

func newServeCmd() *cobra.Command {
	var envPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.NewApp().Run(envPath)
		},
	}
	cmd.Flags().StringVar(&envPath, "env-file", ".env", "path to .env file")

	return cmd
}

func newGameService() (service.GameService, error) {
	catalog, err := catalog_repo.NewCatalogRepository()
	if err != nil {
		return nil, err
	}
	return game.NewGameService(catalog), nil
}
