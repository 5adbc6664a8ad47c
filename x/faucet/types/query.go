package types

import "cosmossdk.io/math"

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Config Config `json:"config"`
}

type QueryLastMintRequest struct {
	Address string `json:"address"`
}

// QueryLastMintResponse leaves Found false for accounts that never minted or
// whose record was pruned.
type QueryLastMintResponse struct {
	Found  bool  `json:"found"`
	Height int64 `json:"height"`
}

type QueryEligibilityRequest struct {
	Address string `json:"address"`
}

// QueryEligibilityResponse predicts the outcome of a mint at the current
// height. Reason carries the rejection when Eligible is false.
type QueryEligibilityResponse struct {
	Eligible       bool     `json:"eligible"`
	Amount         math.Int `json:"amount"`
	NextMintHeight int64    `json:"next_mint_height"`
	Reason         string   `json:"reason,omitempty"`
}
