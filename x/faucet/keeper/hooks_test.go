package keeper_test

import (
	"github.com/allora-network/allora-faucet/x/faucet/types"
)

func (s *KeeperTestSuite) TestAccountRemovalPrunesLastMint() {
	s.atHeight(1)
	s.expectBalance(s.alice, existentialDeposit)
	s.expectDeposit(s.alice, maxBalance-existentialDeposit)
	_, err := s.faucetKeeper.Mint(s.ctx, types.SignedOrigin(s.alice))
	s.Require().NoError(err)
	s.requireLastMint(s.alice, 1)

	err = s.faucetKeeper.Hooks().AfterAccountRemoved(s.ctx, s.alice)
	s.Require().NoError(err)
	s.requireNoLastMint(s.alice)

	// the same address comes back inside the old cooldown and is not throttled
	s.atHeight(2)
	s.expectBalance(s.alice, 0)
	s.expectDeposit(s.alice, maxBalance)
	_, err = s.faucetKeeper.Mint(s.ctx, types.SignedOrigin(s.alice))
	s.Require().NoError(err)
	s.requireLastMint(s.alice, 2)
}

func (s *KeeperTestSuite) TestAccountRemovalIsIdempotent() {
	hooks := s.faucetKeeper.Hooks()
	for i := 0; i < 3; i++ {
		s.Require().NoError(hooks.AfterAccountRemoved(s.ctx, s.alice))
		s.requireNoLastMint(s.alice)
	}
}

func (s *KeeperTestSuite) TestAccountRemovalLeavesOtherAccounts() {
	s.Require().NoError(s.faucetKeeper.LastMint.Set(s.ctx, s.alice, 4))
	s.Require().NoError(s.faucetKeeper.LastMint.Set(s.ctx, s.bob, 6))

	s.Require().NoError(s.faucetKeeper.Hooks().AfterAccountRemoved(s.ctx, s.alice))
	s.requireNoLastMint(s.alice)
	s.requireLastMint(s.bob, 6)
}

func (s *KeeperTestSuite) TestMultiAccountHooks() {
	s.Require().NoError(s.faucetKeeper.LastMint.Set(s.ctx, s.alice, 4))

	hooks := types.NewMultiAccountHooks(s.faucetKeeper.Hooks(), s.faucetKeeper.Hooks())
	s.Require().NoError(hooks.AfterAccountRemoved(s.ctx, s.alice))
	s.requireNoLastMint(s.alice)
}
