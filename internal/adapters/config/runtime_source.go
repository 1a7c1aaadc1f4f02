package config

import (
	"context"

	"github.com/trebuchet-org/netcfg/internal/config"
	domain "github.com/trebuchet-org/netcfg/internal/domain/config"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// RuntimeSourceAdapter exposes the RuntimeConfig through the usecase.ConfigSource port
type RuntimeSourceAdapter struct {
	rc *domain.RuntimeConfig
}

// NewRuntimeSourceAdapter creates a new adapter
func NewRuntimeSourceAdapter(rc *domain.RuntimeConfig) *RuntimeSourceAdapter {
	return &RuntimeSourceAdapter{rc: rc}
}

func (a *RuntimeSourceAdapter) Configuration() *domain.Configuration {
	return a.rc.Configuration
}

func (a *RuntimeSourceAdapter) EnvFiles() []string {
	return a.rc.EnvFiles
}

func (a *RuntimeSourceAdapter) Policy() domain.MissingEnvPolicy {
	return a.rc.Policy
}

// ValidatorAdapter adapts config.Validate to the usecase.ConfigValidator interface
type ValidatorAdapter struct{}

// NewValidatorAdapter creates a new adapter
func NewValidatorAdapter() *ValidatorAdapter {
	return &ValidatorAdapter{}
}

// Validate returns every problem found in cfg
func (ValidatorAdapter) Validate(ctx context.Context, cfg *domain.Configuration) []error {
	return config.Problems(config.Validate(cfg))
}

// Ensure the adapters implement the interfaces
var (
	_ usecase.ConfigSource    = (*RuntimeSourceAdapter)(nil)
	_ usecase.ConfigValidator = (*ValidatorAdapter)(nil)
)
