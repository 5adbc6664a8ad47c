package keeper

import (
	"context"

	"cosmossdk.io/errors"
	"github.com/allora-network/allora-faucet/x/faucet/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// InitGenesis loads the LastMint records of a genesis file. A record newer
// than the genesis block is rejected.
func (k Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := data.Validate(k.addressCodec); err != nil {
		return err
	}
	height := k.blockHeight(ctx)
	addrs := make([]sdk.AccAddress, 0, len(data.LastMints))
	for _, record := range data.LastMints {
		if record.Height > height {
			return errors.Wrapf(types.ErrInvalidGenesis,
				"last mint of %s at %d is after genesis height %d", record.Address, record.Height, height)
		}
		addr, err := k.addressCodec.StringToBytes(record.Address)
		if err != nil {
			return errors.Wrapf(types.ErrInvalidGenesis, "%q: %v", record.Address, err)
		}
		addrs = append(addrs, addr)
	}
	for i, record := range data.LastMints {
		if err := k.LastMint.Set(ctx, addrs[i], record.Height); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis returns a GenesisState for a given context and keeper.
// Records come out in store key order.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	iter, err := k.LastMint.Iterate(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	lastMints := make([]types.LastMintRecord, 0)
	for ; iter.Valid(); iter.Next() {
		kv, err := iter.KeyValue()
		if err != nil {
			return nil, err
		}
		addr, err := k.addressCodec.BytesToString(kv.Key)
		if err != nil {
			return nil, err
		}
		lastMints = append(lastMints, types.LastMintRecord{Address: addr, Height: kv.Value})
	}
	return types.NewGenesisState(lastMints), nil
}
