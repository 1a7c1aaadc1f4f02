package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// NetworkInfo is a network profile enriched with derived display data
type NetworkInfo struct {
	Name    string
	Kind    config.NetworkKind
	Default bool
	Profile config.NetworkProfile
	Signers []common.Address // derived from remote credentials, empty for local networks
}

// NetworkResolver handles network configuration resolution
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	DefaultNetwork(ctx context.Context) string
	ResolveNetwork(ctx context.Context, networkName string) (*NetworkInfo, error)
}

// ConfigSource exposes the configuration resolved at startup
type ConfigSource interface {
	Configuration() *config.Configuration
	EnvFiles() []string
	Policy() config.MissingEnvPolicy
}

// ConfigValidator checks a resolved configuration and returns every problem found
type ConfigValidator interface {
	Validate(ctx context.Context, cfg *config.Configuration) []error
}
