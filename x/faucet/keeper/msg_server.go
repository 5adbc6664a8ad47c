package keeper

import (
	"context"

	"cosmossdk.io/errors"
	"github.com/allora-network/allora-faucet/x/faucet/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer handles faucet messages once the ante chain has verified the
// signature of msg.Sender.
type MsgServer interface {
	Mint(ctx context.Context, msg *types.MsgMint) (*types.MsgMintResponse, error)
}

var _ MsgServer = msgServer{}

// msgServer is a wrapper of Keeper.
type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the x/faucet MsgServer interface.
func NewMsgServerImpl(k Keeper) MsgServer {
	return &msgServer{
		Keeper: k,
	}
}

// Mint resolves the signer of msg and tops its balance up to the ceiling.
func (ms msgServer) Mint(ctx context.Context, msg *types.MsgMint) (*types.MsgMintResponse, error) {
	origin, err := ms.originFromSender(msg.Sender)
	if err != nil {
		return nil, err
	}

	res, err := ms.Keeper.Mint(ctx, origin)
	if err != nil {
		return nil, err
	}
	return &types.MsgMintResponse{Amount: res.Amount}, nil
}

// an empty sender is an unsigned request
func (ms msgServer) originFromSender(sender string) (types.Origin, error) {
	if sender == "" {
		return types.NoneOrigin(), nil
	}
	bz, err := ms.addressCodec.StringToBytes(sender)
	if err != nil {
		return types.Origin{}, errors.Wrapf(types.ErrBadOrigin, "invalid sender address %q: %v", sender, err)
	}
	return types.SignedOrigin(sdk.AccAddress(bz)), nil
}
