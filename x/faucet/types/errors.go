package types

import "cosmossdk.io/errors"

var (
	// ERROR 1 IS RESERVED BY COSMOS-SDK PACKAGE
	ErrHighBalance    = errors.Register(ModuleName, 2, "balance is already at or above the faucet ceiling")
	ErrRecentlyMinted = errors.Register(ModuleName, 3, "minted too recently, cooldown has not elapsed")
	ErrBadOrigin      = errors.Register(ModuleName, 4, "origin does not resolve to a signed account")
	ErrInvalidConfig  = errors.Register(ModuleName, 5, "invalid faucet config")
	ErrInvalidGenesis = errors.Register(ModuleName, 6, "invalid faucet genesis")
)
