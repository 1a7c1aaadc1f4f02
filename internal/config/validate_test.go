package config

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// Well-known development key (first account of the default test mnemonic)
const (
	testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func resolveFor(t *testing.T, apiURL, privateKey string) *config.Configuration {
	t.Helper()
	cfg, err := Resolve(config.Settings{APIURL: set(apiURL), PrivateKey: set(privateKey)}, config.MissingEnvPropagate)
	require.NoError(t, err)
	return cfg
}

func TestValidate(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		cfg := resolveFor(t, "https://eth-sepolia.example.test/v2/key", testPrivateKey)
		assert.NoError(t, Validate(cfg))
	})

	tests := []struct {
		name       string
		apiURL     string
		privateKey string
		wantErrs   []string
	}{
		{
			name:       "empty values propagated",
			apiURL:     "",
			privateKey: "",
			wantErrs:   []string{"network sepolia: rpc url is empty", "network sepolia: account 0: invalid signing credential"},
		},
		{
			name:       "relative url",
			apiURL:     "localhost:8545",
			privateKey: testPrivateKey,
			wantErrs:   []string{"rpc url scheme"},
		},
		{
			name:       "url without host",
			apiURL:     "https://",
			privateKey: testPrivateKey,
			wantErrs:   []string{"rpc url has no host"},
		},
		{
			name:       "double prefixed key",
			apiURL:     "wss://node.example.test",
			privateKey: "0x" + testPrivateKey,
			wantErrs:   []string{"account 0: invalid signing credential"},
		},
		{
			name:       "short key",
			apiURL:     "http://127.0.0.1:8545",
			privateKey: "abc123",
			wantErrs:   []string{"not a 32-byte hex secp256k1 key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(resolveFor(t, tt.apiURL, tt.privateKey))
			require.Error(t, err)
			problems := Problems(err)
			assert.Len(t, problems, len(tt.wantErrs))
			for _, want := range tt.wantErrs {
				assert.Contains(t, err.Error(), want)
			}
		})
	}

	t.Run("unknown default network", func(t *testing.T) {
		cfg := resolveFor(t, "https://example.test", testPrivateKey)
		cfg.DefaultNetwork = "mainnet"

		err := Validate(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrUnknownNetwork)
		assert.Contains(t, err.Error(), "'mainnet'")
	})

	t.Run("zero gas settings", func(t *testing.T) {
		cfg := resolveFor(t, "https://example.test", testPrivateKey)
		cfg.Networks["sepolia"].Remote.Gas = 0
		cfg.Networks["sepolia"].Remote.GasPrice = 0

		problems := Problems(Validate(cfg))
		require.Len(t, problems, 2)
		assert.Contains(t, problems[0].Error(), "gas limit must be positive")
		assert.Contains(t, problems[1].Error(), "gas price must be positive")
	})

	t.Run("errors never echo the key", func(t *testing.T) {
		secret := "zz" + testPrivateKey[2:]
		err := Validate(resolveFor(t, "https://example.test", secret))
		require.Error(t, err)
		assert.NotContains(t, err.Error(), secret)
	})
}

func TestSignerAddress(t *testing.T) {
	addr, err := SignerAddress("0x" + testPrivateKey)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testAddress), addr)
	assert.Equal(t, testAddress, addr.Hex())

	_, err = SignerAddress(testPrivateKey)
	assert.ErrorIs(t, err, config.ErrInvalidCredential)

	_, err = SignerAddress("0x")
	assert.ErrorIs(t, err, config.ErrInvalidCredential)
}

func TestValidateEndpoint(t *testing.T) {
	for _, ok := range []string{"https://a.test", "http://127.0.0.1:8545", "wss://a.test/ws", "WSS://A.TEST"} {
		assert.NoError(t, ValidateEndpoint(ok), ok)
	}
	for _, bad := range []string{"", "ftp://a.test", "a.test", "://broken", "https://"} {
		assert.Error(t, ValidateEndpoint(bad), bad)
	}
}

func TestProblems(t *testing.T) {
	assert.Nil(t, Problems(nil))

	a, b, c := errors.New("a"), errors.New("b"), errors.New("c")
	assert.Equal(t, []error{a}, Problems(a))
	assert.Equal(t, []error{a, b, c}, Problems(errors.Join(a, errors.Join(b, c))))
}

func TestSortedNetworkNames(t *testing.T) {
	cfg := resolveFor(t, "https://example.test", testPrivateKey)
	assert.Equal(t, []string{"hardhat", "sepolia"}, SortedNetworkNames(cfg))
}
