package config

import (
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// Resolve builds the network configuration from the given settings.
// It reads no ambient state: every input arrives through settings, so equal
// settings always produce structurally equal configurations.
func Resolve(settings config.Settings, policy config.MissingEnvPolicy) (*config.Configuration, error) {
	if missing := MissingSettings(settings); len(missing) > 0 && policy == config.MissingEnvFail {
		return nil, &config.MissingEnvError{Names: missing}
	}

	return &config.Configuration{
		CompilerVersion: config.CompilerVersion,
		DefaultNetwork:  config.DefaultNetwork,
		Networks: map[string]config.NetworkProfile{
			config.LocalNetwork: {
				Kind: config.NetworkKindLocal,
				Local: &config.LocalProfile{
					AllowUnlimitedContractSize: true,
				},
			},
			config.DefaultNetwork: {
				Kind: config.NetworkKindRemote,
				Remote: &config.RemoteProfile{
					URL:      settings.APIURL.Value,
					Accounts: []string{config.CredentialPrefix + settings.PrivateKey.Value},
					Gas:      config.DefaultGas,
					GasPrice: config.DefaultGasPrice,
				},
			},
		},
	}, nil
}

// MissingSettings returns the names of required variables that are absent or empty,
// in a stable order.
func MissingSettings(settings config.Settings) []string {
	var missing []string
	if settings.APIURL.Missing() {
		missing = append(missing, config.EnvAPIURL)
	}
	if settings.PrivateKey.Missing() {
		missing = append(missing, config.EnvPrivateKey)
	}
	return missing
}
