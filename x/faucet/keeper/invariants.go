package keeper

import (
	"fmt"

	"github.com/allora-network/allora-faucet/x/faucet/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterInvariants registers the faucet module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "last-mint-not-in-future", LastMintNotInFutureInvariant(k))
	ir.RegisterRoute(types.ModuleName, "last-mint-accounts-exist", LastMintAccountsExistInvariant(k))
}

// AllInvariants is a convenience function to run all invariants in the faucet module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if res, stop := LastMintNotInFutureInvariant(k)(ctx); stop {
			return res, stop
		}
		return LastMintAccountsExistInvariant(k)(ctx)
	}
}

// LastMintNotInFutureInvariant checks that no record is newer than the
// current block; a mint can only record the height it ran at.
func LastMintNotInFutureInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		height := k.blockHeight(ctx)
		iter, err := k.LastMint.Iterate(ctx, nil)
		if err != nil {
			panic(fmt.Sprintf("failed to get last mint iterator: %v", err))
		}
		defer iter.Close()

		for ; iter.Valid(); iter.Next() {
			kv, err := iter.KeyValue()
			if err != nil {
				panic(fmt.Sprintf("failed to get last mint entry: %v", err))
			}
			if kv.Value > height {
				return sdk.FormatInvariant(
					types.ModuleName,
					"last mint not in future",
					fmt.Sprintf("Account: %s | LastMint: %d | Height: %d", kv.Key, kv.Value, height),
				), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "last mint not in future", ""), false
	}
}

// LastMintAccountsExistInvariant checks that the removal hook left no record
// behind for a destroyed account.
func LastMintAccountsExistInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		iter, err := k.LastMint.Iterate(ctx, nil)
		if err != nil {
			panic(fmt.Sprintf("failed to get last mint iterator: %v", err))
		}
		defer iter.Close()

		for ; iter.Valid(); iter.Next() {
			addr, err := iter.Key()
			if err != nil {
				panic(fmt.Sprintf("failed to get last mint key: %v", err))
			}
			if !k.accountKeeper.HasAccount(ctx, addr) {
				return sdk.FormatInvariant(
					types.ModuleName,
					"last mint accounts exist",
					fmt.Sprintf("orphaned LastMint record for %s", addr),
				), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "last mint accounts exist", ""), false
	}
}
