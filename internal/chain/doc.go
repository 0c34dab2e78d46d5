// Package chain talks to an Ethereum JSON-RPC node on behalf of the deployer.
//
// Client implements domain.ContractDeployer and domain.Funder on top of
// go-ethereum's ethclient and bind packages. Every call takes a context for
// cancellation; confirmation waits poll the node until the transaction is
// mined and fail when the receipt reports a reverted status.
//
// FileArtifacts reads the JSON artifacts emitted by a Hardhat build, so
// contracts can be deployed without recompiling them.
package chain
