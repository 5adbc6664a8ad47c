package keeper

import (
	"context"

	"cosmossdk.io/core/header"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ header.Service = SDKHeaderService{}

// SDKHeaderService reads the block header carried by the sdk.Context. Apps
// that already provide a header.Service should inject theirs instead.
type SDKHeaderService struct{}

func (SDKHeaderService) GetHeaderInfo(ctx context.Context) header.Info {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return header.Info{
		Height:  sdkCtx.BlockHeight(),
		Time:    sdkCtx.BlockTime(),
		ChainID: sdkCtx.ChainID(),
	}
}
