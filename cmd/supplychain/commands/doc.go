// Package commands defines the supplychain CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init           Write the effective configuration to the config file
//   - deploy         Deploy the configured contract plan and print each address
//   - fund           Send ether from the deployer to an account
//   - connect        Connect to a wallet provider and show the active address
//   - key generate   Create a deployer key in the local key store
//   - key import     Store an existing private key in the local key store
//   - key address    Print the key store address and fingerprint
//
// Failed deployments are reported as "deploy <Label> (step N): <cause>",
// where <cause> is the node or artifact error as returned.
//
// # Implementation
//
// The root command builds a zap logger, loads the YAML config and constructs
// the dependency graph (key store, signer service, artifact source) before any
// subcommand runs. Chain and wallet connections are opened by the subcommands
// that need them and closed when they return.
package commands
