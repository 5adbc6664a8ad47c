package keeper_test

import (
	"github.com/allora-network/allora-faucet/x/faucet/types"

	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
)

func (s *KeeperTestSuite) TestGenesisRoundTrip() {
	genesisState := types.NewGenesisState([]types.LastMintRecord{
		{Address: s.alice.String(), Height: 3},
		{Address: s.bob.String(), Height: 9},
	})

	s.atHeight(9)
	s.Require().NoError(s.faucetKeeper.InitGenesis(s.ctx, genesisState))
	s.requireLastMint(s.alice, 3)
	s.requireLastMint(s.bob, 9)

	exported, err := s.faucetKeeper.ExportGenesis(s.ctx)
	s.Require().NoError(err)
	s.Require().ElementsMatch(genesisState.LastMints, exported.LastMints)
}

func (s *KeeperTestSuite) TestExportEmptyGenesis() {
	exported, err := s.faucetKeeper.ExportGenesis(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(types.DefaultGenesisState(), exported)
}

func (s *KeeperTestSuite) TestInitGenesisRejectsInvalidState() {
	genesisState := types.NewGenesisState([]types.LastMintRecord{
		{Address: s.alice.String(), Height: 3},
		{Address: s.alice.String(), Height: 4},
	})

	err := s.faucetKeeper.InitGenesis(s.ctx, genesisState)
	s.Require().ErrorIs(err, types.ErrInvalidGenesis)
	s.requireNoLastMint(s.alice)
}

func (s *KeeperTestSuite) TestInitGenesisRejectsFutureHeights() {
	s.atHeight(4)
	genesisState := types.NewGenesisState([]types.LastMintRecord{
		{Address: s.alice.String(), Height: 4},
		{Address: s.bob.String(), Height: 5},
	})

	err := s.faucetKeeper.InitGenesis(s.ctx, genesisState)
	s.Require().ErrorIs(err, types.ErrInvalidGenesis)
	s.requireNoLastMint(s.alice)
	s.requireNoLastMint(s.bob)
}

func (s *KeeperTestSuite) TestInitGenesisDecodesWithKeeperCodec() {
	otherPrefix, err := addresscodec.NewBech32Codec("allo").BytesToString(s.alice)
	s.Require().NoError(err)

	err = s.faucetKeeper.InitGenesis(s.ctx, types.NewGenesisState([]types.LastMintRecord{
		{Address: otherPrefix, Height: 0},
	}))
	s.Require().ErrorIs(err, types.ErrInvalidGenesis)
	s.requireNoLastMint(s.alice)
}
