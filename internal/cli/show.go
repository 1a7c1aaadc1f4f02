package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/netcfg/internal/cli/render"
	"github.com/trebuchet-org/netcfg/internal/config"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var (
		format        string
		revealSecrets bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved network configuration",
		Long: `Print the resolved configuration in the shape consumed by build and deploy runners.

Signing credentials are redacted unless --reveal-secrets is given.

Examples:
  netcfg show
  netcfg show --format yaml
  netcfg show --format toml --reveal-secrets`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.ParseFormat(format)
			if err != nil {
				return err
			}

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowConfig.Run(cmd.Context(), usecase.ShowConfigParams{
				RevealSecrets: revealSecrets,
			})
			if err != nil {
				return err
			}

			renderer := render.NewConfigRenderer(cmd.OutOrStdout(), f)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, yaml, toml)")
	cmd.Flags().BoolVar(&revealSecrets, "reveal-secrets", false, "Print signing credentials unredacted")

	return cmd
}
