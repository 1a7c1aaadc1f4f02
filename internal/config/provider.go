package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// projectMarkers identify the root of a contracts project
var projectMarkers = []string{".env", "hardhat.config.js", "hardhat.config.ts", "foundry.toml", "package.json", ".git"}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper, log *slog.Logger) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	policy := config.MissingEnvFail
	if v.GetBool("allow_missing_env") {
		policy = config.MissingEnvPropagate
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot: projectRoot,
		Debug:       v.GetBool("debug"),
		Policy:      policy,
	}

	loaded, err := LoadDotEnv(projectRoot, v.GetStringSlice("env_file")...)
	if err != nil {
		return nil, err
	}
	cfg.EnvFiles = loaded
	for _, f := range loaded {
		log.Debug("loaded dotenv file", "path", f)
	}

	cfg.Settings = SettingsFromViper(NewInputViper())
	if policy == config.MissingEnvPropagate {
		for _, name := range MissingSettings(cfg.Settings) {
			log.Warn("environment variable not set, propagating empty value", "name", name)
		}
	}

	resolved, err := Resolve(cfg.Settings, policy)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network configuration: %w", err)
	}
	cfg.Configuration = resolved

	log.Debug("resolved network configuration",
		"compiler", resolved.CompilerVersion,
		"defaultNetwork", resolved.DefaultNetwork,
		"networks", len(resolved.Networks),
		"policy", policy.String(),
	)

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to the first directory
// holding a project marker. Falls back to the current directory.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Tool settings come from NETCFG_* variables
	v.SetEnvPrefix("NETCFG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AllowEmptyEnv(true)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("log_level", "")
	v.SetDefault("allow_missing_env", false)

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
			if err != nil {
				panic(err)
			}
		})
	}

	return v
}
