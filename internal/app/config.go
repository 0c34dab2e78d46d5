package app

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"supplychain/internal/services/deploy"
	"supplychain/internal/services/funding"
)

// DefaultConfigFile is read from the working directory when --config is not given.
const DefaultConfigFile = "supplychain.yaml"

// ErrUnknownNetwork is returned when the selected network is not configured.
var ErrUnknownNetwork = errors.New("unknown network")

// Config holds everything the CLI needs to reach a chain and a wallet.
type Config struct {
	// Network selection
	DefaultNetwork string                   `yaml:"default_network"`
	Networks       map[string]NetworkConfig `yaml:"networks"`

	// Deployment
	Artifacts string         `yaml:"artifacts"`
	Pipeline  string         `yaml:"pipeline"` // supplychain | combined
	Combined  CombinedConfig `yaml:"combined"`
	Timeout   string         `yaml:"timeout"`

	// Wallet connection
	Wallet WalletConfig `yaml:"wallet"`

	// Funding
	Fund FundConfig `yaml:"fund"`

	// Endpoint and key from the environment. They apply to whichever network
	// is selected and are never written back by Save.
	envURL string
	envKey string
}

// NetworkConfig is one target chain, in the shape of a Hardhat network entry.
type NetworkConfig struct {
	URL      string   `yaml:"url"`
	ChainID  int64    `yaml:"chain_id"` // 0 = ask the node
	Accounts []string `yaml:"accounts"` // raw private keys; first one signs
}

// CombinedConfig parameterises the single-contract pipeline.
type CombinedConfig struct {
	Artifact         string `yaml:"artifact"`
	ManufacturerName string `yaml:"manufacturer_name"`
	ContactEmail     string `yaml:"contact_email"`
}

// WalletConfig locates the wallet provider. An empty URL means no wallet.
type WalletConfig struct {
	ProviderURL string `yaml:"provider_url"`
}

// FundConfig holds defaults for the fund command.
type FundConfig struct {
	To     string `yaml:"to"`
	Amount string `yaml:"amount"`
}

// DefaultConfig targets a local Ganache node.
func DefaultConfig() *Config {
	return &Config{
		DefaultNetwork: "localhost",
		Networks: map[string]NetworkConfig{
			"localhost": {URL: "http://127.0.0.1:7545"},
		},
		Artifacts: "artifacts",
		Pipeline:  deploy.PipelineSupplyChain,
		Combined:  CombinedConfig{Artifact: string(deploy.LabelRouter)},
		Timeout:   "10m",
		Fund:      FundConfig{Amount: funding.DefaultAmount},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// ErrConfigExists is returned by Save when path already holds a file.
var ErrConfigExists = errors.New("config file already exists")

// Save writes the configuration as YAML. An existing file is only replaced
// when overwrite is set.
func (c *Config) Save(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// applyEnvOverrides lets the environment supply secrets and endpoints.
func (c *Config) applyEnvOverrides() {
	if name := os.Getenv("SUPPLYCHAIN_NETWORK"); name != "" {
		c.DefaultNetwork = name
	}
	c.envURL = os.Getenv("SUPPLYCHAIN_RPC_URL")
	c.envKey = os.Getenv("SUPPLYCHAIN_PRIVATE_KEY")
	if dir := os.Getenv("SUPPLYCHAIN_ARTIFACTS"); dir != "" {
		c.Artifacts = dir
	}
	if url := os.Getenv("SUPPLYCHAIN_WALLET_URL"); url != "" {
		c.Wallet.ProviderURL = url
	}
}

// Network returns the named network, or the default one when name is empty.
// SUPPLYCHAIN_RPC_URL and SUPPLYCHAIN_PRIVATE_KEY override the selected entry;
// an RPC URL alone is enough to target a network missing from the file.
func (c *Config) Network(name string) (string, NetworkConfig, error) {
	if name == "" {
		name = c.DefaultNetwork
	}
	net, ok := c.Networks[name]
	if c.envURL != "" {
		net.URL = c.envURL
		ok = true
	}
	if c.envKey != "" {
		net.Accounts = []string{c.envKey}
	}
	if !ok {
		return "", NetworkConfig{}, fmt.Errorf("%w %q (configured: %v)", ErrUnknownNetwork, name, c.networkNames())
	}
	if net.URL == "" {
		return "", NetworkConfig{}, fmt.Errorf("network %q has no url", name)
	}
	return name, net, nil
}

// TimeoutDuration parses Timeout. Zero means no deadline.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// DeployOptions maps the config onto a built-in plan selection.
func (c *Config) DeployOptions() deploy.Options {
	return deploy.Options{
		Pipeline:         c.Pipeline,
		Artifact:         c.Combined.Artifact,
		ManufacturerName: c.Combined.ManufacturerName,
		ContactEmail:     c.Combined.ContactEmail,
	}
}

func (c *Config) networkNames() []string {
	names := make([]string, 0, len(c.Networks))
	for n := range c.Networks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
