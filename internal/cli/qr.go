package cli

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
)

func newQRCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Print a QR code that opens the web game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if target == "" {
				target = strings.TrimSuffix(cfg.ServerURL, "/") + "/"
			}

			code, err := qrcode.New(target, qrcode.Medium)
			if err != nil {
				return fmt.Errorf("encode qr code: %w", err)
			}

			if cfg.Output == OutputJSON {
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(map[string]string{"url": target})
				return nil
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprint(out, code.ToSmallString(false))
			_, _ = fmt.Fprintln(out, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "url", "", "URL to encode, defaults to --server")

	return cmd
}
