package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/samber/lo"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

var allowedSchemes = []string{"http", "https", "ws", "wss"}

// Validate checks a resolved configuration and reports every problem found.
// The returned error is nil when the configuration is usable as-is.
func Validate(cfg *config.Configuration) error {
	var errs []error

	if _, ok := cfg.Networks[cfg.DefaultNetwork]; !ok {
		errs = append(errs, fmt.Errorf("default network: %w", &config.UnknownNetworkError{Name: cfg.DefaultNetwork}))
	}

	for _, name := range SortedNetworkNames(cfg) {
		for _, err := range Problems(ValidateProfile(cfg.Networks[name])) {
			errs = append(errs, fmt.Errorf("network %s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

// ValidateProfile checks a single network profile
func ValidateProfile(p config.NetworkProfile) error {
	switch p.Kind {
	case config.NetworkKindLocal:
		if p.Local == nil {
			return fmt.Errorf("local profile has no parameters")
		}
		return nil
	case config.NetworkKindRemote:
		if p.Remote == nil {
			return fmt.Errorf("remote profile has no parameters")
		}
		return validateRemote(p.Remote)
	default:
		return fmt.Errorf("unsupported network kind %q", p.Kind)
	}
}

func validateRemote(r *config.RemoteProfile) error {
	var errs []error

	if err := ValidateEndpoint(r.URL); err != nil {
		errs = append(errs, err)
	}
	if len(r.Accounts) == 0 {
		errs = append(errs, fmt.Errorf("no signing credentials configured"))
	}
	for i, account := range r.Accounts {
		if _, err := SignerAddress(account); err != nil {
			errs = append(errs, fmt.Errorf("account %d: %w", i, err))
		}
	}
	if r.Gas == 0 {
		errs = append(errs, fmt.Errorf("gas limit must be positive"))
	}
	if r.GasPrice == 0 {
		errs = append(errs, fmt.Errorf("gas price must be positive"))
	}

	return errors.Join(errs...)
}

// ValidateEndpoint checks that rawURL is an absolute RPC endpoint
func ValidateEndpoint(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("rpc url is empty")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("rpc url is malformed: %w", err)
	}
	if !lo.Contains(allowedSchemes, strings.ToLower(u.Scheme)) {
		return fmt.Errorf("rpc url scheme %q is not one of %s", u.Scheme, strings.Join(allowedSchemes, ", "))
	}
	if u.Host == "" {
		return fmt.Errorf("rpc url has no host")
	}
	return nil
}

// SignerAddress derives the account address controlled by a 0x-prefixed private key
func SignerAddress(credential string) (common.Address, error) {
	if !strings.HasPrefix(credential, config.CredentialPrefix) {
		return common.Address{}, fmt.Errorf("%w: missing %s prefix", config.ErrInvalidCredential, config.CredentialPrefix)
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(credential, config.CredentialPrefix))
	if err != nil {
		// not wrapped: the parser error can echo key bytes
		return common.Address{}, fmt.Errorf("%w: not a 32-byte hex secp256k1 key", config.ErrInvalidCredential)
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// Problems flattens an errors.Join tree into its leaves. A nil error yields nil.
func Problems(err error) []error {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var leaves []error
	for _, e := range joined.Unwrap() {
		leaves = append(leaves, Problems(e)...)
	}
	return leaves
}

// SortedNetworkNames returns the configured network names in lexical order
func SortedNetworkNames(cfg *config.Configuration) []string {
	names := lo.Keys(cfg.Networks)
	slices.Sort(names)
	return names
}
