package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/header"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/allora-network/allora-faucet/x/faucet/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type BlockHeight = int64

// Keeper of the faucet store
type Keeper struct {
	storeService  storetypes.KVStoreService
	headerService header.Service
	addressCodec  address.Codec
	accountKeeper types.AccountKeeper
	bankKeeper    types.BankKeeper
	config        types.Config

	Schema collections.Schema
	// block height of the last accepted mint for an account;
	// absent if the account never minted or was removed since
	LastMint collections.Map[sdk.AccAddress, BlockHeight]
}

// NewKeeper creates a new faucet Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	headerService header.Service,
	ak types.AccountKeeper,
	bk types.BankKeeper,
	config types.Config,
) Keeper {
	// ensure faucet module account is set
	if addr := ak.GetModuleAddress(types.ModuleName); addr == nil {
		panic(fmt.Sprintf("the x/%s module account has not been set", types.ModuleName))
	}
	if err := config.Validate(); err != nil {
		panic(err)
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService:  storeService,
		headerService: headerService,
		addressCodec:  ak.AddressCodec(),
		accountKeeper: ak,
		bankKeeper:    bk,
		config:        config,
		LastMint:      collections.NewMap(sb, types.LastMintKey, "last_mint", sdk.AccAddressKey, collections.Int64Value),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema
	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// Config getter
func (k Keeper) Config() types.Config {
	return k.config
}

// AddressCodec returns the codec the msg handler and queries decode addresses with.
func (k Keeper) AddressCodec() address.Codec {
	return k.addressCodec
}

// GetLastMint returns the height of the last accepted mint for addr, and
// false when there is no record.
func (k Keeper) GetLastMint(ctx context.Context, addr sdk.AccAddress) (BlockHeight, bool, error) {
	height, err := k.LastMint.Get(ctx, addr)
	if errors.Is(err, collections.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return height, true, nil
}

// blockHeight reads the current height from the header service.
func (k Keeper) blockHeight(ctx context.Context) BlockHeight {
	return k.headerService.GetHeaderInfo(ctx).Height
}

/// BANK KEEPER RELATED FUNCTIONS

// GetBalance returns the faucet denom balance of addr.
func (k Keeper) GetBalance(ctx context.Context, addr sdk.AccAddress) sdk.Coin {
	return k.bankKeeper.GetBalance(ctx, addr, k.config.Denom)
}

// DepositCreating credits newly issued coins to addr, raising total supply.
// It is not a transfer from another account: the coins are minted into the
// faucet module account and moved straight on.
func (k Keeper) DepositCreating(ctx context.Context, addr sdk.AccAddress, coins sdk.Coins) error {
	if coins.Empty() {
		// skip as no coins need to be minted
		return nil
	}
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return err
	}
	return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr, coins)
}
