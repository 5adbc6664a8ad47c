package types

import (
	"strconv"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeMinted = "faucet_minted"

	AttributeKeyWho         = "who"
	AttributeKeyAmount      = "amount"
	AttributeKeyDenom       = "denom"
	AttributeKeyBlockHeight = "block_height"
)

func EmitNewMintedEvent(ctx sdk.Context, who sdk.AccAddress, amount math.Int, denom string, height int64) {
	ctx.EventManager().EmitEvent(NewMintedEvent(who, amount, denom, height))
}

func NewMintedEvent(who sdk.AccAddress, amount math.Int, denom string, height int64) sdk.Event {
	return sdk.NewEvent(
		EventTypeMinted,
		sdk.NewAttribute(AttributeKeyWho, who.String()),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
		sdk.NewAttribute(AttributeKeyDenom, denom),
		sdk.NewAttribute(AttributeKeyBlockHeight, strconv.FormatInt(height, 10)),
	)
}
