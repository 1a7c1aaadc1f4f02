package usecase

import (
	"context"

	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// CheckConfigResult contains the outcome of validating the configuration
type CheckConfigResult struct {
	Networks []string
	Problems []error
	Policy   config.MissingEnvPolicy
}

// Valid reports whether no problem was found
func (r *CheckConfigResult) Valid() bool {
	return len(r.Problems) == 0
}

// CheckConfig validates the resolved configuration
type CheckConfig struct {
	source    ConfigSource
	resolver  NetworkResolver
	validator ConfigValidator
}

// NewCheckConfig creates a new CheckConfig use case
func NewCheckConfig(source ConfigSource, resolver NetworkResolver, validator ConfigValidator) *CheckConfig {
	return &CheckConfig{
		source:    source,
		resolver:  resolver,
		validator: validator,
	}
}

// Run executes the use case
func (uc *CheckConfig) Run(ctx context.Context) (*CheckConfigResult, error) {
	result := &CheckConfigResult{
		Networks: uc.resolver.GetNetworks(ctx),
		Policy:   uc.source.Policy(),
	}

	result.Problems = uc.validator.Validate(ctx, uc.source.Configuration())

	return result, nil
}
