package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplychain/internal/services/deploy"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	name, net, err := cfg.Network("")
	require.NoError(t, err)
	assert.Equal(t, "localhost", name)
	assert.Equal(t, "http://127.0.0.1:7545", net.URL)
	assert.Equal(t, deploy.PipelineSupplyChain, cfg.Pipeline)
	assert.Equal(t, "1.0", cfg.Fund.Amount)

	d, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, d)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "supplychain.yaml")
	body := `
default_network: sepolia
networks:
  sepolia:
    url: https://rpc.sepolia.example
    chain_id: 11155111
    accounts: ["0xabc"]
pipeline: combined
combined:
  manufacturer_name: Acme Farms
  contact_email: ops@acme.example
wallet:
  provider_url: http://127.0.0.1:8546
timeout: 90s
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	name, net, err := cfg.Network("")
	require.NoError(t, err)
	assert.Equal(t, "sepolia", name)
	assert.Equal(t, int64(11155111), net.ChainID)
	assert.Equal(t, []string{"0xabc"}, net.Accounts)

	opts := cfg.DeployOptions()
	assert.Equal(t, deploy.PipelineCombined, opts.Pipeline)
	assert.Equal(t, "SupplyChain", opts.Artifact, "default artifact survives partial override")
	assert.Equal(t, "Acme Farms", opts.ManufacturerName)
	assert.Equal(t, "http://127.0.0.1:8546", cfg.Wallet.ProviderURL)

	// Built-in localhost network is still selectable.
	_, _, err = cfg.Network("localhost")
	assert.NoError(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "supplychain.yaml")
	require.NoError(t, os.WriteFile(path, []byte("networks: [unterminated"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("private key and url apply to the default network", func(t *testing.T) {
		t.Setenv("SUPPLYCHAIN_RPC_URL", "http://node:8545")
		t.Setenv("SUPPLYCHAIN_PRIVATE_KEY", "0xkey")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		_, net, err := cfg.Network("")
		require.NoError(t, err)
		assert.Equal(t, "http://node:8545", net.URL)
		assert.Equal(t, []string{"0xkey"}, net.Accounts)
	})

	t.Run("overrides follow an explicitly selected network", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "supplychain.yaml")
		body := "networks:\n  sepolia:\n    url: https://old.example\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		t.Setenv("SUPPLYCHAIN_RPC_URL", "https://new.example")
		t.Setenv("SUPPLYCHAIN_PRIVATE_KEY", "0xkey")

		cfg, err := Load(path)
		require.NoError(t, err)

		name, net, err := cfg.Network("sepolia")
		require.NoError(t, err)
		assert.Equal(t, "sepolia", name)
		assert.Equal(t, "https://new.example", net.URL)
		assert.Equal(t, []string{"0xkey"}, net.Accounts)
		assert.Equal(t, "https://old.example", cfg.Networks["sepolia"].URL, "file entry is left untouched")
	})

	t.Run("key alone keeps the file url", func(t *testing.T) {
		t.Setenv("SUPPLYCHAIN_PRIVATE_KEY", "0xkey")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		_, net, err := cfg.Network("localhost")
		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:7545", net.URL)
		assert.Equal(t, []string{"0xkey"}, net.Accounts)

		_, _, err = cfg.Network("mainnet")
		assert.ErrorIs(t, err, ErrUnknownNetwork)
	})

	t.Run("network switch creates the entry", func(t *testing.T) {
		t.Setenv("SUPPLYCHAIN_NETWORK", "ci")
		t.Setenv("SUPPLYCHAIN_RPC_URL", "http://ci:8545")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		name, net, err := cfg.Network("")
		require.NoError(t, err)
		assert.Equal(t, "ci", name)
		assert.Equal(t, "http://ci:8545", net.URL)
	})

	t.Run("wallet and artifacts", func(t *testing.T) {
		t.Setenv("SUPPLYCHAIN_WALLET_URL", "ws://127.0.0.1:8546")
		t.Setenv("SUPPLYCHAIN_ARTIFACTS", "/build/artifacts")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "ws://127.0.0.1:8546", cfg.Wallet.ProviderURL)
		assert.Equal(t, "/build/artifacts", cfg.Artifacts)
	})
}

func TestSave_RoundTripAndNoClobber(t *testing.T) {
	t.Setenv("SUPPLYCHAIN_PRIVATE_KEY", "0xsecret")
	path := filepath.Join(t.TempDir(), "supplychain.yaml")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	cfg.Pipeline = deploy.PipelineCombined
	require.NoError(t, cfg.Save(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "0xsecret", "environment secrets are not persisted")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, deploy.PipelineCombined, loaded.Pipeline)

	assert.ErrorIs(t, cfg.Save(path, false), ErrConfigExists)
	assert.NoError(t, cfg.Save(path, true))
}

func TestNetwork_Unknown(t *testing.T) {
	_, _, err := DefaultConfig().Network("mainnet")
	assert.True(t, errors.Is(err, ErrUnknownNetwork))
}

func TestTimeoutDuration_Invalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = "soon"
	_, err := cfg.TimeoutDuration()
	assert.Error(t, err)
}
