package types

import (
	stdmath "math"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MintResult is the outcome of an accepted mint.
type MintResult struct {
	Who    sdk.AccAddress
	Amount math.Int
	Height int64
}

// MsgMint asks the faucet to top up the sender's balance to the ceiling.
type MsgMint struct {
	Sender string `json:"sender"`
}

type MsgMintResponse struct {
	Amount math.Int `json:"amount"`
}

// NextMintHeight is the first height at which an account whose last mint
// happened at lastMint may mint again. Saturates at MaxInt64.
func NextMintHeight(lastMint, minInterval int64) int64 {
	if minInterval > stdmath.MaxInt64-lastMint {
		return stdmath.MaxInt64
	}
	return lastMint + minInterval
}

// CooldownElapsed reports whether at least minInterval blocks separate
// lastMint from height. Both heights are non-negative, so the difference
// cannot overflow.
func CooldownElapsed(lastMint, height, minInterval int64) bool {
	return height-lastMint >= minInterval
}
