package config

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding of the resolved configuration
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported encodings
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat parses a --format value; the empty string selects JSON
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected json, yaml or toml)", s)
	}
}

// EncodeOptions controls how the configuration is written
type EncodeOptions struct {
	RevealSecrets bool
}

// configDocument is the wire shape consumed by external runners
type configDocument struct {
	CompilerVersion string                     `json:"compilerVersion" yaml:"compilerVersion" toml:"compilerVersion"`
	DefaultNetwork  string                     `json:"defaultNetwork" yaml:"defaultNetwork" toml:"defaultNetwork"`
	Networks        map[string]networkDocument `json:"networks" yaml:"networks" toml:"networks"`
}

type networkDocument struct {
	AllowUnlimitedContractSize *bool    `json:"allowUnlimitedContractSize,omitempty" yaml:"allowUnlimitedContractSize,omitempty" toml:"allowUnlimitedContractSize,omitempty"`
	URL                        *string  `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
	Accounts                   []string `json:"accounts,omitempty" yaml:"accounts,omitempty" toml:"accounts,omitempty"`
	Gas                        *uint64  `json:"gas,omitempty" yaml:"gas,omitempty" toml:"gas,omitempty"`
	GasPrice                   *uint64  `json:"gasPrice,omitempty" yaml:"gasPrice,omitempty" toml:"gasPrice,omitempty"`
}

// Encode writes cfg to w in the requested format.
// Signing credentials are redacted unless opts.RevealSecrets is set.
func Encode(w io.Writer, cfg *config.Configuration, format Format, opts EncodeOptions) error {
	doc := newConfigDocument(cfg, opts)

	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	return nil
}

func newConfigDocument(cfg *config.Configuration, opts EncodeOptions) configDocument {
	doc := configDocument{
		CompilerVersion: cfg.CompilerVersion,
		DefaultNetwork:  cfg.DefaultNetwork,
		Networks:        make(map[string]networkDocument, len(cfg.Networks)),
	}

	for name, profile := range cfg.Networks {
		var nd networkDocument
		switch {
		case profile.Local != nil:
			allow := profile.Local.AllowUnlimitedContractSize
			nd.AllowUnlimitedContractSize = &allow
		case profile.Remote != nil:
			url := profile.Remote.URL
			gas := profile.Remote.Gas
			gasPrice := profile.Remote.GasPrice
			nd.URL = &url
			nd.Gas = &gas
			nd.GasPrice = &gasPrice
			nd.Accounts = make([]string, len(profile.Remote.Accounts))
			for i, account := range profile.Remote.Accounts {
				if opts.RevealSecrets {
					nd.Accounts[i] = account
				} else {
					nd.Accounts[i] = RedactCredential(account)
				}
			}
		}
		doc.Networks[name] = nd
	}

	return doc
}

// RedactCredential masks a private key, keeping only its last four hex characters
func RedactCredential(credential string) string {
	key := strings.TrimPrefix(credential, config.CredentialPrefix)
	switch {
	case key == "":
		return credential
	case len(key) <= 4:
		return config.CredentialPrefix + strings.Repeat("*", len(key))
	default:
		return config.CredentialPrefix + "…" + key[len(key)-4:]
	}
}
