package keeper

import (
	"context"

	"github.com/allora-network/allora-faucet/x/faucet/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ types.AccountHooks = Hooks{}

// Hooks wrapper struct for the faucet keeper
type Hooks struct {
	k Keeper
}

// Hooks returns the account lifecycle hooks to hand to the host ledger.
func (k Keeper) Hooks() Hooks {
	return Hooks{k}
}

// AfterAccountRemoved prunes the LastMint record of a destroyed account so
// a later account with the same address starts without a cooldown.
// Removing an absent record is a no-op.
func (h Hooks) AfterAccountRemoved(ctx context.Context, addr sdk.AccAddress) error {
	if err := h.k.LastMint.Remove(ctx, addr); err != nil {
		h.k.Logger(ctx).Error("failed to prune last mint", "who", addr.String(), "error", err.Error())
		return err
	}
	return nil
}
