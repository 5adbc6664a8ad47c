package keeper

import (
	"context"
	"math/big"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/allora-network/allora-faucet/x/faucet/metrics"
	"github.com/allora-network/allora-faucet/x/faucet/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Mint tops the origin's balance up to the configured ceiling with newly
// issued funds. All checks run before any write; a rejected request leaves
// balances, supply and LastMint untouched.
func (k Keeper) Mint(ctx context.Context, origin types.Origin) (types.MintResult, error) {
	who, err := types.EnsureSigned(origin)
	if err != nil {
		metrics.IncrMintRejectedCounter("bad_origin")
		return types.MintResult{}, err
	}

	amount, height, err := k.mintableAmount(ctx, who)
	if err != nil {
		if errors.IsOf(err, types.ErrRecentlyMinted, types.ErrHighBalance) {
			metrics.IncrMintRejectedCounter(rejectionReason(err))
			k.Logger(ctx).Info("faucet mint rejected", "who", who.String(), "height", height, "reason", err.Error())
		}
		return types.MintResult{}, err
	}

	// attempt writes in a cache context, only write finally if there are no errors
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheSdkCtx, write := sdkCtx.CacheContext()

	coins := sdk.NewCoins(sdk.NewCoin(k.config.Denom, amount))
	if err := k.DepositCreating(cacheSdkCtx, who, coins); err != nil {
		return types.MintResult{}, errors.Wrapf(err, "failed to credit %s to %s", coins, who)
	}
	if err := k.LastMint.Set(cacheSdkCtx, who, height); err != nil {
		return types.MintResult{}, errors.Wrap(err, "failed to record last mint")
	}
	write()

	types.EmitNewMintedEvent(sdkCtx, who, amount, k.config.Denom, height)
	metrics.IncrMintCounter()
	metrics.SetMintedAmountGauge(k.config.Denom, toFloat32(amount))
	k.Logger(ctx).Debug("faucet minted", "who", who.String(), "amount", coins.String(), "height", height)

	return types.MintResult{Who: who, Amount: amount, Height: height}, nil
}

// mintableAmount runs the read-only half of a mint: the cooldown check
// followed by the ceiling check. It returns the amount that would be
// credited and the current height.
func (k Keeper) mintableAmount(ctx context.Context, who sdk.AccAddress) (math.Int, BlockHeight, error) {
	height := k.blockHeight(ctx)

	last, found, err := k.GetLastMint(ctx, who)
	if err != nil {
		return math.Int{}, height, err
	}
	if found && !types.CooldownElapsed(last, height, k.config.MinInterval) {
		return math.Int{}, height, errors.Wrapf(types.ErrRecentlyMinted,
			"last mint at %d, next allowed at %d, current %d",
			last, types.NextMintHeight(last, k.config.MinInterval), height)
	}

	balance := k.GetBalance(ctx, who).Amount
	if balance.GTE(k.config.MaxBalance) {
		return math.Int{}, height, errors.Wrapf(types.ErrHighBalance,
			"balance %s%s, ceiling %s%s", balance, k.config.Denom, k.config.MaxBalance, k.config.Denom)
	}

	return k.config.MaxBalance.Sub(balance), height, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.IsOf(err, types.ErrRecentlyMinted):
		return "recently_minted"
	case errors.IsOf(err, types.ErrHighBalance):
		return "high_balance"
	default:
		return "unknown"
	}
}

func toFloat32(amount math.Int) float32 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float32()
	return f
}
