package usecase

import (
	"context"

	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// ShowConfigParams contains parameters for showing the configuration
type ShowConfigParams struct {
	RevealSecrets bool
}

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config        *config.Configuration
	EnvFiles      []string
	Policy        config.MissingEnvPolicy
	RevealSecrets bool
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	source ConfigSource
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(source ConfigSource) *ShowConfig {
	return &ShowConfig{
		source: source,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context, params ShowConfigParams) (*ShowConfigResult, error) {
	return &ShowConfigResult{
		Config:        uc.source.Configuration(),
		EnvFiles:      uc.source.EnvFiles(),
		Policy:        uc.source.Policy(),
		RevealSecrets: params.RevealSecrets,
	}, nil
}
