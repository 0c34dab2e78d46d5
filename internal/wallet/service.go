package wallet

import (
	"context"
	"errors"
	"sync/atomic"
)

// DevWallet is the rpc service behind cmd/walletd. Registered under the "eth"
// namespace it answers eth_requestAccounts and eth_accounts for fixed accounts.
// Access is granted process-wide: once any client calls eth_requestAccounts,
// eth_accounts returns the accounts to every client.
type DevWallet struct {
	accounts []string
	reject   bool
	granted  atomic.Bool
}

// NewDevWallet serves accounts. When reject is set every access request is
// declined the way a user closing the wallet prompt would.
func NewDevWallet(accounts []string, reject bool) *DevWallet {
	return &DevWallet{accounts: append([]string(nil), accounts...), reject: reject}
}

// RejectedError is the error a wallet returns for a declined request.
type RejectedError struct{}

func (RejectedError) Error() string  { return "User rejected the request." }
func (RejectedError) ErrorCode() int { return CodeUserRejected }

// RequestAccounts is served as eth_requestAccounts.
func (w *DevWallet) RequestAccounts(ctx context.Context) ([]string, error) {
	if w.reject {
		return nil, RejectedError{}
	}
	if len(w.accounts) == 0 {
		return nil, errors.New("wallet has no accounts")
	}
	w.granted.Store(true)
	return w.accounts, nil
}

// Accounts is served as eth_accounts. Accounts are hidden until access is granted.
func (w *DevWallet) Accounts(ctx context.Context) []string {
	if !w.granted.Load() {
		return []string{}
	}
	return w.accounts
}
