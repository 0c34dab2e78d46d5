// Package connector establishes a connection to a user's wallet and exposes
// the active account address.
//
// The wallet is an explicit domain.WalletProvider handed to New rather than
// an ambient global, so any substitute provider can stand in for a browser
// extension. A nil provider means no wallet is present.
//
// Each call to Connect is one attempt: it reports Pending, then exactly one of
// Connected(address) or Failed(reason). Nothing is retried; a new attempt
// needs a new call.
package connector
