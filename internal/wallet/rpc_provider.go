package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"

	"supplychain/internal/domain"
)

// CodeUserRejected is the EIP-1193 code for a request the user declined.
const CodeUserRejected = 4001

// ErrNoAccounts is returned when the wallet grants access but lists no account.
var ErrNoAccounts = errors.New("wallet returned no accounts")

// RPCProvider talks to a wallet over JSON-RPC.
type RPCProvider struct {
	client *rpc.Client
}

// Dial connects to the wallet endpoint at url.
func Dial(ctx context.Context, url string) (*RPCProvider, error) {
	c, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial wallet %s: %w", url, err)
	}
	return NewRPCProvider(c), nil
}

// NewRPCProvider wraps an existing rpc client.
func NewRPCProvider(c *rpc.Client) *RPCProvider { return &RPCProvider{client: c} }

// RequestAccounts asks the wallet for account access.
func (p *RPCProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.client.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

// SignerAddress returns the first account the wallet exposes, unchanged.
func (p *RPCProvider) SignerAddress(ctx context.Context) (string, error) {
	var accounts []string
	if err := p.client.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return "", err
	}
	if len(accounts) == 0 {
		return "", ErrNoAccounts
	}
	return accounts[0], nil
}

// Close shuts down the underlying connection.
func (p *RPCProvider) Close() { p.client.Close() }

// ErrorCode returns the JSON-RPC error code carried by err, if any.
func ErrorCode(err error) (int, bool) {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr.ErrorCode(), true
	}
	return 0, false
}

var _ domain.WalletProvider = (*RPCProvider)(nil)

// unavailable stands in for a wallet endpoint that could not be reached.
type unavailable struct{ err error }

// Unavailable returns a provider whose every call fails with err, so a dial
// failure surfaces as a provider error on the first request.
func Unavailable(err error) domain.WalletProvider { return unavailable{err: err} }

func (u unavailable) RequestAccounts(context.Context) ([]string, error) { return nil, u.err }
func (u unavailable) SignerAddress(context.Context) (string, error)     { return "", u.err }
