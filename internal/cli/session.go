package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/imposter/internal/api/request"
	"github.com/mcoot/imposter/internal/api/response"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Drive the round on a running server",
	}

	cmd.AddCommand(newSessionStartCmd())
	cmd.AddCommand(newSessionStateCmd())
	cmd.AddCommand(newSessionRoundCmd("reveal", "Reveal the current player's card"))
	cmd.AddCommand(newSessionRoundCmd("advance", "Hide the card and move to the next player"))
	cmd.AddCommand(newSessionResetCmd())

	return cmd
}

func newSessionStartCmd() *cobra.Command {
	var (
		players, imposters int
		req                request.StartSessionRequest
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Deal a new round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session

			req.PlayerCount = request.NewCount(players)
			req.ImposterCount = request.NewCount(imposters)

			if err := client.Post(cmd.Context(), "/session", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&players, "players", "p", 5, "Number of players")
	cmd.Flags().IntVarP(&imposters, "imposters", "i", 1, "Number of imposters")
	cmd.Flags().StringVar(&req.CustomWord, "word", "", "Custom secret word, overrides --category")
	cmd.Flags().StringVar(&req.Category, "category", "all", "Category to draw the secret word from")

	return cmd
}

func newSessionStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show the current round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session

			if err := client.Get(cmd.Context(), "/session", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

// newSessionRoundCmd builds the reveal and advance commands, which only
// differ by endpoint
func newSessionRoundCmd(action, short string) *cobra.Command {
	var req request.RoundRequest

	cmd := &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session

			if err := client.Post(cmd.Context(), "/session/"+action, req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.RoundID, "round", "", "Only act if this round is still being played")

	return cmd
}

func newSessionResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Abandon the round and return to setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session

			if err := client.Delete(cmd.Context(), "/session", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}
