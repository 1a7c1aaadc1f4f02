package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/netcfg/internal/app"
	"github.com/trebuchet-org/netcfg/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "netcfg",
		Short: "Resolve deployment network configuration from the environment",
		Long: `netcfg resolves the compiler version, default network and network profiles
of a contracts project from API_URL and PRIVATE_KEY (read from the environment
and from .env files) and prints them for external build and deploy runners.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			v := config.SetupViper(cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, appKey, appInstance))

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().String("project-root", "", "Project directory holding .env files (defaults to the nearest project marker)")
	rootCmd.PersistentFlags().StringSlice("env-file", nil, "Dotenv files to load instead of .env and .env.local")
	rootCmd.PersistentFlags().Bool("allow-missing-env", false, "Embed empty values for missing API_URL/PRIVATE_KEY instead of failing")

	rootCmd.AddCommand(NewShowCmd())
	rootCmd.AddCommand(NewNetworksCmd())
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
