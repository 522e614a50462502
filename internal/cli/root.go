// Package cli implements the imposter command: a terminal version of the
// game and a client for the HTTP API.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/imposter/internal/config"
)

// EnvServer names the variable that sets --server
const EnvServer = config.EnvPrefix + "_SERVER"

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "imposter",
		Short: "Pass-and-play imposter party game",
		Long: `imposter deals secret cards for a party game played on one device.

Everyone but the imposters sees the same secret word. Pass the device around,
let each player look at their card, then talk it out and find the imposters.

Use "imposter play" for a round in this terminal, "imposter serve" to host the
web version, or the session commands to drive a running server.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Resolve(cmd.Flags(), ""); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: "+EnvServer+")")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: IMPOSTER_OUTPUT)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newCategoriesCmd())
	rootCmd.AddCommand(newPreferencesCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newQRCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
