// Package model defines domain models for staking transaction analysis.
package model

// Network names the Bitcoin network a run is scanning.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Signet  Network = "signet"
	Regtest Network = "regtest"
)
