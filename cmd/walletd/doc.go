// Package main runs walletd, a development wallet provider speaking the
// browser-wallet JSON-RPC subset used by `supplychain connect`.
//
// JSON-RPC methods
//
//	eth_requestAccounts
//	    Grant access and return the configured accounts. With --reject the
//	    call fails with code 4001 "User rejected the request.".
//
//	eth_accounts
//	    Return the configured accounts once access has been granted, an empty
//	    list before that.
//
// Behaviour
//
//   - Accounts are returned exactly as given with --account.
//   - State is held in memory and lost on process exit.
//   - Each request is logged with method, path, remote, status and duration.
//   - The default listen address is 127.0.0.1:8546.
//
// walletd never holds private keys. It is meant for local testing only.
package main
