package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/netcfg/internal/cli/render"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the resolved network configuration",
		Long: `Validate the resolved configuration without contacting any network:
the default network must exist, RPC URLs must be absolute http(s) or ws(s) URLs,
credentials must be 32-byte hex secp256k1 keys and gas settings must be positive.

Exits with a non-zero status when a problem is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CheckConfig.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewCheckRenderer(cmd.OutOrStdout())
			if err := renderer.Render(result); err != nil {
				return err
			}

			if !result.Valid() {
				return fmt.Errorf("configuration has %d problem(s)", len(result.Problems))
			}
			return nil
		},
	}
}
