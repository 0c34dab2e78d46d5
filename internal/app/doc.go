// Package app wires application dependencies for the CLI.
//
// It loads the YAML Config (with environment overrides), builds the key store,
// signer service and artifact source, and exposes them via the Wire struct.
// Chain and wallet connections are made per command through Wire methods.
package app
