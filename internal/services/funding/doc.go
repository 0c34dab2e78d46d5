// Package funding sends ether from the deployer to another account, typically
// to top up a browser wallet on a local development chain.
package funding
