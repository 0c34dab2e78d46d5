package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"supplychain/internal/crypto"
	"supplychain/internal/domain"
)

// transferGas is the intrinsic gas of a plain value transfer.
const transferGas uint64 = 21_000

// ErrReverted is returned when a mined transaction reports failure.
var ErrReverted = errors.New("transaction reverted")

// Backend is the subset of a node connection the client needs. Both
// *ethclient.Client and go-ethereum's simulated client satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Client deploys contracts and sends value transfers as a single signer.
type Client struct {
	backend Backend
	signer  domain.Signer
	chainID *big.Int
	log     *zap.Logger
	closeFn func()
}

// Dial connects to url. A zero chainID is resolved from the node.
func Dial(ctx context.Context, url string, chainID int64, signer domain.Signer, log *zap.Logger) (*Client, error) {
	ec, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	c, err := New(ctx, ec, chainID, signer, log)
	if err != nil {
		ec.Close()
		return nil, err
	}
	c.closeFn = ec.Close
	return c, nil
}

// New wraps an existing backend.
func New(ctx context.Context, backend Backend, chainID int64, signer domain.Signer, log *zap.Logger) (*Client, error) {
	if signer.Key == nil {
		return nil, errors.New("chain client requires a signer")
	}
	if log == nil {
		log = zap.NewNop()
	}
	id := big.NewInt(chainID)
	if chainID == 0 {
		var err error
		id, err = backend.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("query chain id: %w", err)
		}
	}
	return &Client{backend: backend, signer: signer, chainID: id, log: log}, nil
}

// ChainID returns the chain the client signs for.
func (c *Client) ChainID() *big.Int { return new(big.Int).Set(c.chainID) }

// From returns the signer address.
func (c *Client) From() common.Address { return c.signer.Address }

// Close wipes the signer key and releases the node connection when the
// client owns it. The client cannot sign afterwards.
func (c *Client) Close() {
	crypto.WipeKey(c.signer.Key)
	if c.closeFn != nil {
		c.closeFn()
	}
}

// Deploy sends the creation transaction for artifact with ABI-encoded
// constructor args and blocks until it is mined.
func (c *Client) Deploy(ctx context.Context, artifact domain.Artifact, args ...any) (common.Address, common.Hash, error) {
	if len(artifact.Bytecode) == 0 {
		return common.Address{}, common.Hash{}, fmt.Errorf("%s has no creation bytecode", artifact.Name)
	}
	opts, err := c.transactOpts(ctx)
	if err != nil {
		return common.Address{}, common.Hash{}, err
	}

	addr, tx, _, err := bind.DeployContract(opts, artifact.ABI, artifact.Bytecode, c.backend, args...)
	if err != nil {
		return common.Address{}, common.Hash{}, fmt.Errorf("send %s creation: %w", artifact.Name, err)
	}
	c.log.Debug("creation sent",
		zap.String("artifact", artifact.Name),
		zap.String("tx", tx.Hash().Hex()),
		zap.String("predicted", addr.Hex()),
	)

	receipt, err := c.wait(ctx, tx)
	if err != nil {
		return common.Address{}, tx.Hash(), fmt.Errorf("wait %s creation: %w", artifact.Name, err)
	}
	if receipt.ContractAddress != (common.Address{}) {
		addr = receipt.ContractAddress
	}
	return addr, tx.Hash(), nil
}

// Transfer sends wei to address to and blocks until the transfer is mined.
func (c *Client) Transfer(ctx context.Context, to common.Address, wei *big.Int) (common.Hash, error) {
	nonce, err := c.backend.PendingNonceAt(ctx, c.signer.Address)
	if err != nil {
		return common.Hash{}, fmt.Errorf("nonce: %w", err)
	}
	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("gas price: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    wei,
		Gas:      transferGas,
		GasPrice: gasPrice,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.signer.Key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("sign transfer: %w", err)
	}
	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("send transfer: %w", err)
	}
	c.log.Debug("transfer sent", zap.String("tx", signed.Hash().Hex()), zap.String("to", to.Hex()))

	if _, err := c.wait(ctx, signed); err != nil {
		return signed.Hash(), err
	}
	return signed.Hash(), nil
}

func (c *Client) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(c.signer.Key, c.chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}

func (c *Client) wait(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: %s", ErrReverted, receipt.TxHash.Hex())
	}
	return receipt, nil
}

var (
	_ domain.ContractDeployer = (*Client)(nil)
	_ domain.Funder           = (*Client)(nil)
	_ Backend                 = (*ethclient.Client)(nil)
)
