package cli

import (
	"climate_finance/internal/model"
	"climate_finance/pkg/money"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List investment options",
		RunE: func(cmd *cobra.Command, args []string) error {
			serv, err := newGameService()
			if err != nil {
				return err
			}
			return printCatalog(cmd.OutOrStdout(), serv.Catalog())
		},
	}
}

func printCatalog(w io.Writer, options []model.InvestmentOption) error {
	if _, err := fmt.Fprintln(w, headingStyle.Render("Investimentos")); err != nil {
		return err
	}
	for _, o := range options {
		_, err := fmt.Fprintf(w, "%-10s %-32s %-16s %10s  +%d%% / +%d%%\n",
			o.ID, o.Title, o.Category, money.Format(o.Cost), o.SustainabilityEffect, o.CommunityEffect)
		if err != nil {
			return err
		}
	}
	return nil
}
