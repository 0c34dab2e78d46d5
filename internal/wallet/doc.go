// Package wallet provides a JSON-RPC implementation of domain.WalletProvider.
//
// A browser wallet exposes an EIP-1193 provider to the page; outside a
// browser the same two calls the connector needs, eth_requestAccounts and
// eth_accounts, are made over any go-ethereum rpc transport (http, ws, ipc).
// Errors reported by the wallet keep their JSON-RPC code so callers can
// recognise a user rejection (4001).
package wallet
