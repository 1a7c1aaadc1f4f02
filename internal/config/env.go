package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// DefaultEnvFiles are loaded from the project root when no --env-file is given
var DefaultEnvFiles = []string{".env", ".env.local"}

// SettingsFromLookup reads the resolver inputs through an os.LookupEnv style function
func SettingsFromLookup(lookup func(string) (string, bool)) config.Settings {
	read := func(name string) config.EnvValue {
		v, ok := lookup(name)
		return config.EnvValue{Value: v, Set: ok}
	}
	return config.Settings{
		APIURL:     read(config.EnvAPIURL),
		PrivateKey: read(config.EnvPrivateKey),
	}
}

// NewInputViper creates a viper instance bound to the unprefixed resolver
// inputs only. Tool settings live on the instance from SetupViper.
func NewInputViper() *viper.Viper {
	v := viper.New()
	v.AllowEmptyEnv(true)
	_ = v.BindEnv(config.EnvAPIURL, config.EnvAPIURL)
	_ = v.BindEnv(config.EnvPrivateKey, config.EnvPrivateKey)
	return v
}

// SettingsFromViper reads the resolver inputs from a viper instance prepared by NewInputViper
func SettingsFromViper(v *viper.Viper) config.Settings {
	return SettingsFromLookup(func(name string) (string, bool) {
		if !v.IsSet(name) {
			return "", false
		}
		return v.GetString(name), true
	})
}

// LoadDotEnv loads dotenv files into the process environment.
// Relative paths are taken from projectRoot. Variables already present in the
// environment are never overridden. Missing files are skipped.
// Returns the files that were actually loaded.
func LoadDotEnv(projectRoot string, files ...string) ([]string, error) {
	if len(files) == 0 {
		files = DefaultEnvFiles
	}

	var loaded []string
	for _, file := range files {
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectRoot, path)
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		} else if err != nil {
			return loaded, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		if err := godotenv.Load(path); err != nil {
			return loaded, fmt.Errorf("failed to load %s: %w", path, err)
		}
		loaded = append(loaded, path)
	}

	return loaded, nil
}
