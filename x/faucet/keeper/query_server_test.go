package keeper_test

import (
	stdmath "math"

	"cosmossdk.io/math"
	"github.com/allora-network/allora-faucet/x/faucet/keeper"
	"github.com/allora-network/allora-faucet/x/faucet/types"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

func (s *KeeperTestSuite) TestQueryConfig() {
	res, err := s.queryServer.Config(s.ctx, &types.QueryConfigRequest{})
	s.Require().NoError(err)
	s.Require().Equal(testConfig(), res.Config)
}

func (s *KeeperTestSuite) TestQueryLastMint() {
	res, err := s.queryServer.LastMint(s.ctx, &types.QueryLastMintRequest{Address: s.alice.String()})
	s.Require().NoError(err)
	s.Require().False(res.Found)

	s.Require().NoError(s.faucetKeeper.LastMint.Set(s.ctx, s.alice, 12))
	res, err = s.queryServer.LastMint(s.ctx, &types.QueryLastMintRequest{Address: s.alice.String()})
	s.Require().NoError(err)
	s.Require().True(res.Found)
	s.Require().Equal(int64(12), res.Height)
}

func (s *KeeperTestSuite) TestQueryLastMintInvalidAddress() {
	_, err := s.queryServer.LastMint(s.ctx, &types.QueryLastMintRequest{Address: "foo"})
	s.Require().ErrorIs(err, sdkerrors.ErrInvalidAddress)
}

func (s *KeeperTestSuite) TestQueryEligibility() {
	s.atHeight(4)

	// never minted
	s.expectBalance(s.alice, existentialDeposit)
	res, err := s.queryServer.Eligibility(s.ctx, &types.QueryEligibilityRequest{Address: s.alice.String()})
	s.Require().NoError(err)
	s.Require().True(res.Eligible)
	s.Require().Equal(math.NewInt(maxBalance-existentialDeposit), res.Amount)
	s.Require().Equal(int64(4), res.NextMintHeight)

	// inside the cooldown
	s.Require().NoError(s.faucetKeeper.LastMint.Set(s.ctx, s.alice, 2))
	res, err = s.queryServer.Eligibility(s.ctx, &types.QueryEligibilityRequest{Address: s.alice.String()})
	s.Require().NoError(err)
	s.Require().False(res.Eligible)
	s.Require().True(res.Amount.IsZero())
	s.Require().Equal(2+minInterval, res.NextMintHeight)
	s.Require().Contains(res.Reason, types.ErrRecentlyMinted.Error())

	// cooldown over, balance at the ceiling
	s.atHeight(2 + minInterval)
	s.expectBalance(s.alice, maxBalance)
	res, err = s.queryServer.Eligibility(s.ctx, &types.QueryEligibilityRequest{Address: s.alice.String()})
	s.Require().NoError(err)
	s.Require().False(res.Eligible)
	s.Require().Contains(res.Reason, types.ErrHighBalance.Error())

	// the query wrote nothing
	s.requireLastMint(s.alice, 2)
	s.requireNoEvents()
}

func (s *KeeperTestSuite) TestQueryEligibilityHugeInterval() {
	k, ctx := s.isolatedKeeper("huge_query", types.NewConfig(denom, math.NewInt(maxBalance), stdmath.MaxInt64))
	s.Require().NoError(k.LastMint.Set(ctx, s.alice, 5))

	res, err := keeper.NewQueryServerImpl(k).Eligibility(ctx.WithBlockHeight(6),
		&types.QueryEligibilityRequest{Address: s.alice.String()})
	s.Require().NoError(err)
	s.Require().False(res.Eligible)
	s.Require().Equal(int64(stdmath.MaxInt64), res.NextMintHeight)
	s.Require().Contains(res.Reason, types.ErrRecentlyMinted.Error())
}
