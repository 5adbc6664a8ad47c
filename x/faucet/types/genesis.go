package types

import (
	"encoding/json"

	"cosmossdk.io/core/address"
	"cosmossdk.io/errors"
)

// LastMintRecord is the exported form of one LastMint entry.
type LastMintRecord struct {
	Address string `json:"address"`
	Height  int64  `json:"height"`
}

// GenesisState holds the faucet's persisted records. The config is not part
// of genesis; it is supplied by the app at build time.
type GenesisState struct {
	LastMints []LastMintRecord `json:"last_mints"`
}

// NewGenesisState creates a new GenesisState object
func NewGenesisState(lastMints []LastMintRecord) *GenesisState {
	return &GenesisState{
		LastMints: lastMints,
	}
}

// DefaultGenesisState creates a default GenesisState object
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		LastMints: []LastMintRecord{},
	}
}

// Validate checks addresses decode with the chain's address codec, heights
// are non-negative and every address appears at most once.
func (gs GenesisState) Validate(ac address.Codec) error {
	seen := make(map[string]struct{}, len(gs.LastMints))
	for i, record := range gs.LastMints {
		addr, err := ac.StringToBytes(record.Address)
		if err != nil {
			return errors.Wrapf(ErrInvalidGenesis, "record %d: %v", i, err)
		}
		if record.Height < 0 {
			return errors.Wrapf(ErrInvalidGenesis, "record %d: negative height %d", i, record.Height)
		}
		key := string(addr)
		if _, ok := seen[key]; ok {
			return errors.Wrapf(ErrInvalidGenesis, "duplicate last mint for %s", record.Address)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func MustMarshalGenesis(gs *GenesisState) json.RawMessage {
	bz, err := json.Marshal(gs)
	if err != nil {
		panic(err)
	}
	return bz
}

func UnmarshalGenesis(bz json.RawMessage) (*GenesisState, error) {
	var gs GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return nil, err
	}
	return &gs, nil
}
