package config

// Literal values baked into every resolved configuration.
const (
	CompilerVersion  = "0.8.0"
	DefaultNetwork   = "sepolia"
	LocalNetwork     = "hardhat"
	DefaultGas       = uint64(2100000)
	DefaultGasPrice  = uint64(8000000000) // wei per gas unit
	CredentialPrefix = "0x"
)

// Environment variable names read at startup
const (
	EnvAPIURL     = "API_URL"
	EnvPrivateKey = "PRIVATE_KEY" //nolint:gosec // variable name, not a secret
)

// NetworkKind distinguishes simulated networks from remote ones
type NetworkKind string

const (
	NetworkKindLocal  NetworkKind = "local"
	NetworkKindRemote NetworkKind = "remote"
)

// Configuration is the resolved network configuration handed to external runners.
// It is built once at startup and never mutated afterwards.
type Configuration struct {
	CompilerVersion string
	DefaultNetwork  string
	Networks        map[string]NetworkProfile
}

// NetworkProfile is a named bundle of connection parameters.
// Exactly one of Local or Remote is set, matching Kind.
type NetworkProfile struct {
	Kind   NetworkKind
	Local  *LocalProfile
	Remote *RemoteProfile
}

// LocalProfile configures the in-memory simulated network
type LocalProfile struct {
	AllowUnlimitedContractSize bool
}

// RemoteProfile configures a network reached over RPC
type RemoteProfile struct {
	URL      string
	Accounts []string // signing credentials, 0x-prefixed hex private keys
	Gas      uint64
	GasPrice uint64
}

// Profile returns the profile registered under name
func (c *Configuration) Profile(name string) (NetworkProfile, bool) {
	p, ok := c.Networks[name]
	return p, ok
}

// Active returns the profile selected by DefaultNetwork
func (c *Configuration) Active() (NetworkProfile, error) {
	p, ok := c.Networks[c.DefaultNetwork]
	if !ok {
		return NetworkProfile{}, &UnknownNetworkError{Name: c.DefaultNetwork}
	}
	return p, nil
}
