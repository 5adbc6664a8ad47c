package types

import "cosmossdk.io/collections"

// prefixes are kept clear of the auth and bank ranges since the
// integration tests share a single store between all three modules
var (
	LastMintKey = collections.NewPrefix(150)
)

const (
	// module name
	ModuleName = "faucet"

	// StoreKey is the default store key for faucet
	StoreKey = ModuleName
)
