package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccountHooks is called by the host ledger on account lifecycle changes.
type AccountHooks interface {
	// AfterAccountRemoved runs once an account is permanently destroyed,
	// before its address can be reused.
	AfterAccountRemoved(ctx context.Context, addr sdk.AccAddress) error
}

var _ AccountHooks = MultiAccountHooks{}

// MultiAccountHooks combines the hooks of several modules. Hooks run in order.
type MultiAccountHooks []AccountHooks

func NewMultiAccountHooks(hooks ...AccountHooks) MultiAccountHooks {
	return hooks
}

func (h MultiAccountHooks) AfterAccountRemoved(ctx context.Context, addr sdk.AccAddress) error {
	for i := range h {
		if err := h[i].AfterAccountRemoved(ctx, addr); err != nil {
			return err
		}
	}
	return nil
}
