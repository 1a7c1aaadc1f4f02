package config

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/netcfg/internal/config"
	domain "github.com/trebuchet-org/netcfg/internal/domain/config"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// NetworkResolver resolves network names against the configuration built at startup
type NetworkResolver struct {
	cfg *domain.Configuration
}

// NewNetworkResolver creates a resolver over the runtime configuration
func NewNetworkResolver(rc *domain.RuntimeConfig) *NetworkResolver {
	return &NetworkResolver{cfg: rc.Configuration}
}

// GetNetworks returns all configured network names in lexical order
func (r *NetworkResolver) GetNetworks(ctx context.Context) []string {
	return config.SortedNetworkNames(r.cfg)
}

// DefaultNetwork returns the name of the network used when none is selected
func (r *NetworkResolver) DefaultNetwork(ctx context.Context) string {
	return r.cfg.DefaultNetwork
}

// ResolveNetwork resolves a network name to its profile and derived signer addresses.
// An unusable credential is reported as an error for that network only.
func (r *NetworkResolver) ResolveNetwork(ctx context.Context, networkName string) (*usecase.NetworkInfo, error) {
	profile, ok := r.cfg.Profile(networkName)
	if !ok {
		return nil, &domain.UnknownNetworkError{Name: networkName}
	}

	info := &usecase.NetworkInfo{
		Name:    networkName,
		Kind:    profile.Kind,
		Default: networkName == r.cfg.DefaultNetwork,
		Profile: profile,
	}

	if profile.Remote != nil {
		info.Signers = make([]common.Address, 0, len(profile.Remote.Accounts))
		for i, account := range profile.Remote.Accounts {
			addr, err := config.SignerAddress(account)
			if err != nil {
				return nil, fmt.Errorf("account %d: %w", i, err)
			}
			info.Signers = append(info.Signers, addr)
		}
	}

	return info, nil
}

// Ensure the resolver implements the interface
var _ usecase.NetworkResolver = (*NetworkResolver)(nil)
