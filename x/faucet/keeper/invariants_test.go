package keeper_test

import (
	"github.com/golang/mock/gomock"

	"github.com/allora-network/allora-faucet/x/faucet/keeper"
)

func (s *KeeperTestSuite) TestLastMintNotInFutureInvariant() {
	s.atHeight(10)
	s.Require().NoError(s.faucetKeeper.LastMint.Set(s.ctx, s.alice, 10))

	_, broken := keeper.LastMintNotInFutureInvariant(s.faucetKeeper)(s.ctx)
	s.Require().False(broken)

	s.Require().NoError(s.faucetKeeper.LastMint.Set(s.ctx, s.bob, 11))
	msg, broken := keeper.LastMintNotInFutureInvariant(s.faucetKeeper)(s.ctx)
	s.Require().True(broken)
	s.Require().Contains(msg, "last mint not in future")
}

func (s *KeeperTestSuite) TestLastMintAccountsExistInvariant() {
	s.Require().NoError(s.faucetKeeper.LastMint.Set(s.ctx, s.alice, 1))

	s.accountKeeper.EXPECT().HasAccount(gomock.Any(), s.alice).Return(true)
	_, broken := keeper.LastMintAccountsExistInvariant(s.faucetKeeper)(s.ctx)
	s.Require().False(broken)

	// account destroyed without the hook being called
	s.accountKeeper.EXPECT().HasAccount(gomock.Any(), s.alice).Return(false)
	msg, broken := keeper.LastMintAccountsExistInvariant(s.faucetKeeper)(s.ctx)
	s.Require().True(broken)
	s.Require().Contains(msg, s.alice.String())

	// once the hook ran there is nothing left to check
	s.Require().NoError(s.faucetKeeper.Hooks().AfterAccountRemoved(s.ctx, s.alice))
	_, broken = keeper.AllInvariants(s.faucetKeeper)(s.ctx)
	s.Require().False(broken)
}
