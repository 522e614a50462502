package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/imposter/internal/api/response"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.HealthResponse

			if err := client.Get(cmd.Context(), "/health", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the word categories on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.CategoriesResponse

			if err := client.Get(cmd.Context(), "/categories", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newPreferencesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preferences",
		Short: "Show the setup the server will pre-fill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Preferences

			if err := client.Get(cmd.Context(), "/preferences", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "forget",
		Short: "Forget the remembered setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), "/preferences", nil); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage("Preferences forgotten")
			return nil
		},
	})

	return cmd
}
