package keeper

import (
	"context"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/allora-network/allora-faucet/x/faucet/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// QueryServer answers read-only questions about the faucet.
type QueryServer interface {
	Config(ctx context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error)
	LastMint(ctx context.Context, req *types.QueryLastMintRequest) (*types.QueryLastMintResponse, error)
	Eligibility(ctx context.Context, req *types.QueryEligibilityRequest) (*types.QueryEligibilityResponse, error)
}

var _ QueryServer = queryServer{}

func NewQueryServerImpl(k Keeper) QueryServer {
	return queryServer{k}
}

type queryServer struct {
	k Keeper
}

// Config returns the deployment config of the faucet.
func (q queryServer) Config(_ context.Context, _ *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	return &types.QueryConfigResponse{Config: q.k.Config()}, nil
}

// LastMint returns the height of the last accepted mint for an address.
func (q queryServer) LastMint(ctx context.Context, req *types.QueryLastMintRequest) (*types.QueryLastMintResponse, error) {
	addr, err := q.decodeAddress(req.Address)
	if err != nil {
		return nil, err
	}
	height, found, err := q.k.GetLastMint(ctx, addr)
	if err != nil {
		return nil, err
	}
	return &types.QueryLastMintResponse{Found: found, Height: height}, nil
}

// Eligibility reports whether a mint by the address would be accepted at
// the current height, and with which amount.
func (q queryServer) Eligibility(ctx context.Context, req *types.QueryEligibilityRequest) (*types.QueryEligibilityResponse, error) {
	addr, err := q.decodeAddress(req.Address)
	if err != nil {
		return nil, err
	}

	next := q.k.blockHeight(ctx)
	last, found, err := q.k.GetLastMint(ctx, addr)
	if err != nil {
		return nil, err
	}
	if found && !types.CooldownElapsed(last, next, q.k.config.MinInterval) {
		next = types.NextMintHeight(last, q.k.config.MinInterval)
	}

	amount, _, err := q.k.mintableAmount(ctx, addr)
	if errors.IsOf(err, types.ErrRecentlyMinted, types.ErrHighBalance) {
		return &types.QueryEligibilityResponse{
			Eligible:       false,
			Amount:         math.ZeroInt(),
			NextMintHeight: next,
			Reason:         err.Error(),
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &types.QueryEligibilityResponse{
		Eligible:       true,
		Amount:         amount,
		NextMintHeight: next,
	}, nil
}

func (q queryServer) decodeAddress(address string) (sdk.AccAddress, error) {
	bz, err := q.k.addressCodec.StringToBytes(address)
	if err != nil {
		return nil, errors.Wrapf(sdkerrors.ErrInvalidAddress, "%q: %v", address, err)
	}
	return bz, nil
}
