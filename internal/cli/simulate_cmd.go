package cli

import (
	"climate_finance/internal/model"
	"climate_finance/internal/service"
	"climate_finance/pkg/money"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var picks []string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a game from a fresh session with the given picks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(picks) == 0 {
				return errors.New("at least one --pick is required")
			}
			serv, err := newGameService()
			if err != nil {
				return err
			}
			_, err = simulate(cmd.Context(), cmd.OutOrStdout(), serv, picks)
			return err
		},
	}
	cmd.Flags().StringArrayVar(&picks, "pick", nil, "option id to invest in, in order (repeatable)")

	return cmd
}

// simulate Проигрывает решения по порядку и печатает каждый шаг
func simulate(ctx context.Context, w io.Writer, serv service.GameService, picks []string) (model.Session, error) {
	session := serv.Reset(ctx)

	for _, id := range picks {
		res := serv.ApplyDecision(ctx, session, id)
		if !res.Accepted {
			if _, err := fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("%s: rejected (%s)", id, res.Reason))); err != nil {
				return session, err
			}
			continue
		}
		session = res.Session

		_, err := fmt.Fprintf(w, "Rodada %d: %s -> %s | Sustentabilidade %d%% | Apoio %d%%\n",
			session.Round-1, res.Option.Title, money.Format(session.Budget), session.Sustainability, session.CommunitySupport)
		if err != nil {
			return session, err
		}
	}

	if session.IsTerminal() {
		_, err := fmt.Fprintf(w, "%s\n%d pontos: %s\n",
			headingStyle.Render("Jogo Concluído!"), session.Summary.TotalScore, session.Summary.Message)
		return session, err
	}

	_, err := fmt.Fprintf(w, "%s %d de %d, orçamento %s\n",
		headingStyle.Render("Em andamento: rodada"), session.Round, model.MaxRounds, money.Format(session.Budget))
	return session, err
}
