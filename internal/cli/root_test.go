package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

// isolateEnv clears every variable the command reads, restoring them afterwards
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"API_URL", "PRIVATE_KEY",
		"NETCFG_ALLOW_MISSING_ENV",
		"NETCFG_PROJECT_ROOT", "NETCFG_ENV_FILE", "NETCFG_DEBUG", "NETCFG_LOG_LEVEL",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func projectWithEnv(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0644))
	}
	return dir
}

func TestShowCommand(t *testing.T) {
	t.Run("prints redacted json", func(t *testing.T) {
		isolateEnv(t)
		dir := projectWithEnv(t, "API_URL=https://example.test/v1\nPRIVATE_KEY="+testPrivateKey+"\n")

		out, err := execute(t, "show", "--project-root", dir)
		require.NoError(t, err)
		assert.Contains(t, out, `"compilerVersion": "0.8.0"`)
		assert.Contains(t, out, `"defaultNetwork": "sepolia"`)
		assert.Contains(t, out, `"url": "https://example.test/v1"`)
		assert.Contains(t, out, `"allowUnlimitedContractSize": true`)
		assert.Contains(t, out, "0x…ff80")
		assert.NotContains(t, out, testPrivateKey)
	})

	t.Run("reveals secrets as yaml", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("API_URL", "https://example.test/v1")
		t.Setenv("PRIVATE_KEY", "abc123")

		out, err := execute(t, "show", "--project-root", t.TempDir(), "--format", "yaml", "--reveal-secrets")
		require.NoError(t, err)
		assert.Contains(t, out, "compilerVersion: 0.8.0")
		assert.Contains(t, out, "- 0xabc123")
		assert.Contains(t, out, "gasPrice: 8000000000")
	})

	t.Run("fails when the environment is incomplete", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("API_URL", "https://example.test/v1")

		_, err := execute(t, "show", "--project-root", t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PRIVATE_KEY is not set")
	})

	t.Run("propagates empty values when allowed", func(t *testing.T) {
		isolateEnv(t)

		out, err := execute(t, "show", "--project-root", t.TempDir(), "--allow-missing-env", "--reveal-secrets")
		require.NoError(t, err)
		assert.Contains(t, out, `"url": ""`)
		assert.Contains(t, out, `"0x"`)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("API_URL", "https://example.test/v1")
		t.Setenv("PRIVATE_KEY", "abc123")

		_, err := execute(t, "show", "--project-root", t.TempDir(), "--format", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})

	t.Run("custom env file", func(t *testing.T) {
		isolateEnv(t)
		dir := projectWithEnv(t, "API_URL=https://ignored.test\nPRIVATE_KEY=ignored\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "sepolia.env"), []byte("API_URL=https://sepolia.test\nPRIVATE_KEY=abc123\n"), 0644))

		out, err := execute(t, "show", "--project-root", dir, "--env-file", "sepolia.env", "--reveal-secrets")
		require.NoError(t, err)
		assert.Contains(t, out, `"url": "https://sepolia.test"`)
		assert.Contains(t, out, `"0xabc123"`)
	})
}

func TestNetworksCommand(t *testing.T) {
	t.Run("lists profiles", func(t *testing.T) {
		isolateEnv(t)
		dir := projectWithEnv(t, "API_URL=https://eth-sepolia.example.test/v2/secret\nPRIVATE_KEY="+testPrivateKey+"\n")

		out, err := execute(t, "networks", "--project-root", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "Available Networks")
		assert.Contains(t, out, "sepolia *")
		assert.Contains(t, out, "hardhat")
		assert.Contains(t, out, "Remote")
		assert.Contains(t, out, "Local")
		assert.Contains(t, out, "https://eth-sepolia.example.test/…")
		assert.NotContains(t, out, "secret")
		assert.Contains(t, out, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
		assert.Contains(t, out, "8 gwei")
	})

	t.Run("marks the default network when its credential is unusable", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("API_URL", "https://example.test/v1")

		out, err := execute(t, "networks", "--project-root", t.TempDir(), "--allow-missing-env")
		require.NoError(t, err)
		assert.Contains(t, out, "sepolia *")
		assert.Contains(t, out, "invalid signing credential")
	})

	t.Run("prefixed variables do not replace resolver inputs", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("API_URL", "https://example.test/v1")
		t.Setenv("PRIVATE_KEY", testPrivateKey)
		t.Setenv("NETCFG_API_URL", "https://other.test")
		t.Setenv("NETCFG_PRIVATE_KEY", "")

		out, err := execute(t, "networks", "--project-root", t.TempDir())
		require.NoError(t, err)
		assert.Contains(t, out, "https://example.test/…")
		assert.NotContains(t, out, "other.test")
		assert.Contains(t, out, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	})
}

func TestCheckCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		isolateEnv(t)
		dir := projectWithEnv(t, "API_URL=https://example.test/v1\nPRIVATE_KEY="+testPrivateKey+"\n")

		out, err := execute(t, "check", "--project-root", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration is valid (2 networks)")
	})

	t.Run("invalid", func(t *testing.T) {
		isolateEnv(t)

		out, err := execute(t, "check", "--project-root", t.TempDir(), "--allow-missing-env")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 problem(s)")
		assert.Contains(t, out, "--allow-missing-env")
		assert.Contains(t, out, "Network sepolia: rpc url is empty")
		assert.Contains(t, out, "invalid signing credential")
	})
}

func TestVersionCommand(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "netcfg version dev")
}
