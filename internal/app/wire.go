package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"supplychain/internal/chain"
	"supplychain/internal/domain"
	"supplychain/internal/services/connector"
	deploysvc "supplychain/internal/services/deploy"
	fundingsvc "supplychain/internal/services/funding"
	signersvc "supplychain/internal/services/signer"
	"supplychain/internal/store"
	"supplychain/internal/wallet"
)

// Wire bundles the stores, services and clients the CLI builds from Config.
// Chain and wallet connections are opened on demand, so commands that need
// neither never touch the network.
type Wire struct {
	Config    *Config
	Log       *zap.Logger
	Keys      *store.KeyFileStore
	Signers   *signersvc.Service
	Artifacts *chain.FileArtifacts
}

// NewWire constructs the dependency graph from cfg. home holds the key store.
func NewWire(cfg *Config, home string, log *zap.Logger) (*Wire, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	if log == nil {
		log = zap.NewNop()
	}
	keys := store.NewKeyFileStore(home)

	return &Wire{
		Config:    cfg,
		Log:       log,
		Keys:      keys,
		Signers:   signersvc.New(keys, log.Named("signer")),
		Artifacts: chain.NewFileArtifacts(cfg.Artifacts),
	}, nil
}

// DialChain resolves the network and its signer, then connects to the node.
// The caller must Close the returned client.
func (w *Wire) DialChain(
	ctx context.Context,
	network string,
	ask signersvc.PassphraseFunc,
) (*chain.Client, domain.NetworkName, error) {
	name, net, err := w.Config.Network(network)
	if err != nil {
		return nil, "", err
	}
	signer, err := w.Signers.Resolve(net.Accounts, ask)
	if err != nil {
		return nil, "", err
	}
	client, err := chain.Dial(ctx, net.URL, net.ChainID, signer, w.Log.Named("chain"))
	if err != nil {
		return nil, "", err
	}
	w.Log.Debug("connected to network",
		zap.String("network", name),
		zap.String("url", net.URL),
		zap.String("chain_id", client.ChainID().String()),
		zap.String("from", client.From().Hex()),
	)
	return client, domain.NetworkName(name), nil
}

// Plan returns the deployment plan selected by the config.
func (w *Wire) Plan() (deploysvc.Plan, error) {
	return deploysvc.PlanFor(w.Config.DeployOptions())
}

// Deployer returns a deploy service that sends through client.
func (w *Wire) Deployer(client domain.ContractDeployer, network domain.NetworkName) *deploysvc.Service {
	return deploysvc.New(w.Artifacts, client, network, w.Log.Named("deploy"))
}

// Funding returns a funding service that sends through client.
func (w *Wire) Funding(client domain.Funder) *fundingsvc.Service {
	return fundingsvc.New(client, w.Log.Named("funding"))
}

// Connector builds a wallet connector for providerURL (falling back to the
// configured URL). With no URL the connector sees no provider at all. The
// returned func releases the provider connection.
func (w *Wire) Connector(ctx context.Context, providerURL string, render connector.Renderer) (*connector.Service, func()) {
	if providerURL == "" {
		providerURL = w.Config.Wallet.ProviderURL
	}
	log := w.Log.Named("connector")
	if providerURL == "" {
		return connector.New(nil, render, log), func() {}
	}

	p, err := wallet.Dial(ctx, providerURL)
	if err != nil {
		return connector.New(wallet.Unavailable(err), render, log), func() {}
	}
	return connector.New(p, render, log), p.Close
}
